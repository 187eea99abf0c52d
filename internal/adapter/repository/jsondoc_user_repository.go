package repository

import (
	"context"

	"ideanest/internal/domain/entity"
	"ideanest/internal/domain/repository"
	"ideanest/internal/infrastructure/docstore"
	"ideanest/pkg/errors"
)

type jsonDocUserRepository struct {
	store *docstore.Store
}

func NewJSONDocUserRepository(store *docstore.Store) repository.UserRepository {
	return &jsonDocUserRepository{
		store: store,
	}
}

func (r *jsonDocUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.Lock(docstore.KindUsers)
	defer r.store.Unlock(docstore.KindUsers)

	doc := r.store.ReadUsers()
	for _, user := range doc.Users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, errors.NotFound("User", nil)
}

func (r *jsonDocUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.Lock(docstore.KindUsers)
	defer r.store.Unlock(docstore.KindUsers)

	doc := r.store.ReadUsers()
	doc.Users = append(doc.Users, user)
	r.store.WriteUsers(doc)

	return nil
}

func (r *jsonDocUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.Lock(docstore.KindUsers)
	defer r.store.Unlock(docstore.KindUsers)

	doc := r.store.ReadUsers()
	for i, existing := range doc.Users {
		if existing.Email == user.Email {
			doc.Users[i] = user
			r.store.WriteUsers(doc)
			return nil
		}
	}

	return errors.NotFound("User", nil)
}
