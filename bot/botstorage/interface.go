package botstorage

import (
	"poolleague/bot/model"
	"poolleague/internal/domain"

	"github.com/google/uuid"
)

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUserRole(user model.User) error
	Log(user model.User, msg string) error
	Subscribe(user model.User) error
	Unsubscribe(user model.User) error
	GetMyPlayer(user model.User) (uuid.UUID, error)
	LinkPlayer(user model.User, player domain.Player) error
}
