package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"poolleague/bot/botstorage"
	"poolleague/bot/model"
	"poolleague/internal/config"
	"poolleague/internal/domain"
	sqlite3 "poolleague/internal/migrate"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "bot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	_, err := s.db.Exec(
		`INSERT INTO bot_users (id, first_name, username, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.FirstName, user.Username, model.RoleUser, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("insert bot user: %w", err)
	}
	user.Role = model.RoleUser
	return user, nil
}

func (s *Storage) GetUser(id int) (model.User, error) {
	var user model.User
	err := s.db.QueryRow(
		`SELECT id, first_name, username, role, created_at, updated_at
		FROM bot_users WHERE id = ?`, id,
	).Scan(&user.ID, &user.FirstName, &user.Username, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	subs, err := s.subscriptions(id)
	if err != nil {
		return model.User{}, err
	}
	user.Subscriptions = subs
	return user, nil
}

func (s *Storage) ListUsers() ([]model.User, error) {
	rows, err := s.db.Query(
		`SELECT id, first_name, username, role, created_at, updated_at FROM bot_users`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(&user.ID, &user.FirstName, &user.Username, &user.Role, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range users {
		subs, err := s.subscriptions(users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Subscriptions = subs
	}
	return users, nil
}

func (s *Storage) subscriptions(userID int) ([]model.EventType, error) {
	rows, err := s.db.Query(`SELECT event FROM bot_subscriptions WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var subs []model.EventType
	for rows.Next() {
		var event string
		if err := rows.Scan(&event); err != nil {
			return nil, err
		}
		subs = append(subs, model.EventType(event))
	}
	return subs, rows.Err()
}

func (s *Storage) UpdateUserRole(user model.User) error {
	_, err := s.db.Exec(`UPDATE bot_users SET role = ?, updated_at = ? WHERE id = ?`,
		user.Role, time.Now(), user.ID)
	return err
}

func (s *Storage) Log(user model.User, msg string) error {
	_, err := s.db.Exec(
		`INSERT INTO bot_log (user_id, message, created_at) VALUES (?, ?, ?)`,
		user.ID, msg, time.Now(),
	)
	return err
}

func (s *Storage) Subscribe(user model.User) error {
	_, err := s.db.Exec(
		`INSERT INTO bot_subscriptions (user_id, event) VALUES (?, ?)`,
		user.ID, string(model.NewMatch),
	)
	if err != nil {
		if strings.HasPrefix(err.Error(), "UNIQUE constraint failed") {
			return nil
		}
		return err
	}
	return nil
}

func (s *Storage) Unsubscribe(user model.User) error {
	_, err := s.db.Exec(
		`DELETE FROM bot_subscriptions WHERE user_id = ? AND event = ?`,
		user.ID, string(model.NewMatch),
	)
	return err
}

func (s *Storage) GetMyPlayer(user model.User) (uuid.UUID, error) {
	var raw string
	err := s.db.QueryRow(`SELECT player_id FROM bot_players WHERE user_id = ?`, user.ID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, errors.New("no player linked, use /me <player name>")
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(raw)
}

func (s *Storage) LinkPlayer(user model.User, player domain.Player) error {
	_, err := s.db.Exec(
		`INSERT INTO bot_players (user_id, player_id) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET player_id = excluded.player_id`,
		user.ID, player.ID.String(),
	)
	return err
}
