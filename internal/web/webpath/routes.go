package webpath

const (
	Home = "/"

	Api                 = "/api"
	ApiLeague           = Api + "/league"
	ApiActivity         = Api + "/activity"
	ApiPlayers          = Api + "/players"
	ApiGetPlayer        = Api + "/players/:id"
	ApiPlayerTargets    = Api + "/players/:id/targets"
	ApiPlayerCooldown   = Api + "/players/:id/cooldown"
	ApiPlayerMatches    = Api + "/players/:id/matches"
	ApiPlayerStatus     = Api + "/players/:id/status"
	ApiPlayerFee        = Api + "/players/:id/fee"
	ApiChallenges       = Api + "/challenges"
	ApiAcceptChallenge  = Api + "/challenges/:id/accept"
	ApiDeclineChallenge = Api + "/challenges/:id/decline"
	ApiCancelChallenge  = Api + "/challenges/:id/cancel"
	ApiMatches          = Api + "/matches"
	ApiConfirmMatch     = Api + "/matches/:id/confirm"
	ApiDisputeMatch     = Api + "/matches/:id/dispute"
	ApiMatchPayment     = Api + "/matches/:id/payment"
	ApiMyChallenges     = Api + "/me/challenges"
	ApiMyMatch          = Api + "/me/match"
)
