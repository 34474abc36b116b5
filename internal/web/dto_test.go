package web

import (
	"testing"

	"github.com/google/uuid"
)

func Test_reportMatchRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     reportMatchRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: reportMatchRequest{
				ChallengeID: uuid.NameSpaceDNS,
				WinnerID:    uuid.NameSpaceURL,
				WinnerScore: 2,
				LoserScore:  1,
			},
			wantErr: false,
		},
		{
			name: "missing challenge",
			req: reportMatchRequest{
				WinnerID:    uuid.NameSpaceURL,
				WinnerScore: 2,
			},
			wantErr: true,
		},
		{
			name: "missing winner",
			req: reportMatchRequest{
				ChallengeID: uuid.NameSpaceDNS,
				WinnerScore: 2,
			},
			wantErr: true,
		},
		{
			name: "loser outscores winner",
			req: reportMatchRequest{
				ChallengeID: uuid.NameSpaceDNS,
				WinnerID:    uuid.NameSpaceURL,
				WinnerScore: 1,
				LoserScore:  2,
			},
			wantErr: true,
		},
		{
			name: "negative loser score",
			req: reportMatchRequest{
				ChallengeID: uuid.NameSpaceDNS,
				WinnerID:    uuid.NameSpaceURL,
				WinnerScore: 2,
				LoserScore:  -1,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_createChallengeRequest_Validate(t *testing.T) {
	if err := (createChallengeRequest{}).Validate(); err == nil {
		t.Error("empty opponent id passed validation")
	}
	if err := (createChallengeRequest{OpponentID: uuid.NameSpaceDNS}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
