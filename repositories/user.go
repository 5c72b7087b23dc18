//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"chat-core/domain"
	"chat-core/errors"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	FindByID(userID domain.UserID) (*domain.User, error)
	FindByEmail(email domain.Email) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	Save(user *domain.User) error
	Delete(user *domain.User) error
}

// UserRepository persists users in BadgerDB. Email and username are
// kept unique through secondary index keys pointing back to the user id:
//
//	user:id:{id}      -> record
//	user:email:{email} -> id
//	user:name:{name}   -> id
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
}

func (r *UserRepository) FindByID(userID domain.UserID) (*domain.User, error) {
	return r.findByKey(userIDKey(userID))
}

func (r *UserRepository) FindByEmail(email domain.Email) (*domain.User, error) {
	return r.findByIndex(userEmailKey(email))
}

func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	return r.findByIndex(userNameKey(username))
}

// Save upserts the user and its index keys. A conflicting email or
// username owned by another id fails with ErrUserAlreadyExists.
func (r *UserRepository) Save(user *domain.User) error {
	data, err := json.Marshal(fromUser(user))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for _, index := range [][]byte{userEmailKey(user.Email()), userNameKey(user.Username())} {
			owner, err := readValue(txn, index)
			if err != nil && !isKeyNotFound(err) {
				return err
			}
			if err == nil && string(owner) != user.UserID().String() {
				return errors.ErrUserAlreadyExists
			}
		}
		if err := txn.Set(userIDKey(user.UserID()), data); err != nil {
			return err
		}
		if err := txn.Set(userEmailKey(user.Email()), []byte(user.UserID())); err != nil {
			return err
		}
		return txn.Set(userNameKey(user.Username()), []byte(user.UserID()))
	})
}

func (r *UserRepository) Delete(user *domain.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, key := range [][]byte{
			userIDKey(user.UserID()),
			userEmailKey(user.Email()),
			userNameKey(user.Username()),
		} {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) findByIndex(indexKey []byte) (*domain.User, error) {
	var key []byte
	err := r.db.View(func(txn *badger.Txn) error {
		id, err := readValue(txn, indexKey)
		if err != nil {
			return err
		}
		key = userIDKey(domain.UserIDOf(string(id)))
		return nil
	})
	if err != nil {
		if isKeyNotFound(err) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return r.findByKey(key)
}

func (r *UserRepository) findByKey(key []byte) (*domain.User, error) {
	var record userRecord
	err := r.db.View(func(txn *badger.Txn) error {
		data, err := readValue(txn, key)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, &record)
	})
	if err != nil {
		if isKeyNotFound(err) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return toUser(record), nil
}

func fromUser(user *domain.User) userRecord {
	return userRecord{
		ID:           user.UserID().String(),
		Username:     user.Username(),
		Email:        user.Email().String(),
		PasswordHash: user.PasswordHash(),
		Status:       string(user.Status()),
		CreatedAt:    user.CreatedAt().UnixNano(),
	}
}

func toUser(record userRecord) *domain.User {
	return domain.RestoreUser(
		domain.UserIDOf(record.ID),
		record.Username,
		domain.Email(record.Email),
		record.PasswordHash,
		domain.PresenceStatus(record.Status),
		time.Unix(0, record.CreatedAt).UTC(),
	)
}

func userIDKey(userID domain.UserID) []byte {
	return []byte("user:id:" + userID)
}

func userEmailKey(email domain.Email) []byte {
	return []byte("user:email:" + email)
}

func userNameKey(username string) []byte {
	return []byte("user:name:" + username)
}
