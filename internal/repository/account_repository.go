package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"accountsvc/internal/model"
	"accountsvc/internal/platform/mongodb"
)

const accountCollection = "account"

// ErrDuplicateAccount reports a unique-index violation on name or
// email during insert.
var ErrDuplicateAccount = errors.New("account already exists")

type AccountRepository struct {
	store *mongodb.Store
}

func NewAccountRepository(store *mongodb.Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// EnsureIndexes creates the unique indexes on name and email. The
// resulting duplicate-key error on insert is the authoritative source
// of the conflict error; the service-level pre-check only exists for a
// friendlier message.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.store.Collection(accountCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create account indexes failed: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByNameOrEmail(ctx context.Context, name, email string) (*model.Account, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "email", Value: email}},
	}}}

	var account model.Account
	found, err := r.store.FindOne(ctx, accountCollection, filter, &account)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &account, nil
}

func (r *AccountRepository) FindByName(ctx context.Context, name string) (*model.Account, error) {
	var account model.Account
	found, err := r.store.FindOne(ctx, accountCollection, bson.D{{Key: "name", Value: name}}, &account)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &account, nil
}

func (r *AccountRepository) Insert(ctx context.Context, account *model.Account) (string, error) {
	id, err := r.store.InsertOne(ctx, accountCollection, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateAccount
		}
		return "", err
	}
	return id, nil
}
