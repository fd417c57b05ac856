package user

import (
	"context"
)

type StubUserRepo struct {
	nextId int
	data   map[int]User
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{nextId: 0, data: map[int]User{}}
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User) (int, error) {
	s.nextId++
	user.Id = s.nextId
	s.data[user.Id] = user
	return user.Id, nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id int) (User, error) {
	u, ok := s.data[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *StubUserRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	for _, u := range s.data {
		if u.Uid == uid {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	if _, ok := s.data[userId]; !ok {
		return User{}, ErrUserNotFound
	}
	user.Id = userId
	s.data[userId] = user
	return user, nil
}

func (s *StubUserRepo) Cleanup() {
	s.data = map[int]User{}
}
