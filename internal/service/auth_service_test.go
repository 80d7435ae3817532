package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/contract"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
)

type fakeAdminRepo struct {
	admins []*entity.Admin
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	r.admins = append(r.admins, admin)
	return nil
}

func (r *fakeAdminRepo) Update(ctx context.Context, admin *entity.Admin) error { return nil }

func (r *fakeAdminRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.admins[:0]
	for _, a := range r.admins {
		if a.Id != id {
			kept = append(kept, a)
		}
	}
	r.admins = kept
	return nil
}

func (r *fakeAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	for _, a := range r.admins {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByUsername:
				if a.Username != s.Username {
					match = false
				}
			case specification.ByEmail:
				if a.Email == nil || *a.Email != s.Email {
					match = false
				}
			case specification.ByID:
				if a.Id != s.ID {
					match = false
				}
			}
		}
		if match {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error) {
	return r.admins, nil
}

func (r *fakeAdminRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.admins)), nil
}

func (r *fakeAdminRepo) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	for _, a := range r.admins {
		if a.IsAdmin {
			n++
		}
	}
	return n, nil
}

func (r *fakeAdminRepo) UpdateAuthProvider(ctx context.Context, id uuid.UUID, provider string) error {
	for _, a := range r.admins {
		if a.Id == id {
			a.AuthProvider = entity.AuthProvider(provider)
		}
	}
	return nil
}

type recordingAudit struct {
	actions []entity.ActionType
}

func (a *recordingAudit) Record(ctx context.Context, adminId *uuid.UUID, action entity.ActionType, changes map[string]interface{}, ipAddress string) {
	a.actions = append(a.actions, action)
}

type authUow struct {
	fakeUow
	repo *fakeAdminRepo
}

func (u *authUow) AdminRepository() contract.AdminRepository { return u.repo }

type authUowFactory struct {
	repo *fakeAdminRepo
}

func (f *authUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &authUow{repo: f.repo}
}

func newAuthFixture(t *testing.T) (*fakeAdminRepo, *recordingAudit, IAuthService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	email := "admin@example.com"

	repo := &fakeAdminRepo{admins: []*entity.Admin{{
		Id:           uuid.New(),
		Username:     "admin",
		Email:        &email,
		PasswordHash: &hashStr,
		IsAdmin:      true,
		AuthProvider: entity.AuthProviderEmail,
	}}}

	audit := &recordingAudit{}
	svc := NewAuthService(
		&authUowFactory{repo: repo},
		session.NewCodec("test-secret"),
		config.AuthConfig{PasswordSessionMaxAge: 86400, LoginAttemptLimit: 10},
		audit,
		nil,
		nil,
		nil,
	)

	return repo, audit, svc
}

func TestLoginIssuesTokenAndAudits(t *testing.T) {
	_, audit, svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	}, "10.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 86400, resp.CookieMaxAge)
	assert.Equal(t, "admin", resp.Admin.Username)
	assert.Contains(t, audit.actions, entity.ActionLogin)

	claims, err := session.NewCodec("test-secret").Verify(resp.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginUnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody", Password: "whatever",
	}, "10.0.0.1")
	_, errWrongPw := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin", Password: "wrong",
	}, "10.0.0.1")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}

func TestRegisterAdminRejectsDuplicateUsername(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	_, err := svc.RegisterAdmin(context.Background(), nil, &dto.RegisterAdminRequest{
		Username: "admin",
		Email:    "other@example.com",
		Password: "password123",
	}, "10.0.0.1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterAdminCreatesAccount(t *testing.T) {
	repo, audit, svc := newAuthFixture(t)

	resp, err := svc.RegisterAdmin(context.Background(), nil, &dto.RegisterAdminRequest{
		Username: "staff",
		Email:    "staff@example.com",
		Password: "password123",
		IsAdmin:  false,
	}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "staff", resp.Username)
	assert.Len(t, repo.admins, 2)
	assert.Contains(t, audit.actions, entity.ActionCreateAdmin)

	created := repo.admins[1]
	assert.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "password123", *created.PasswordHash)
	assert.Equal(t, entity.AuthProviderEmail, created.AuthProvider)
}

func TestDeleteAdminRefusesLastAdmin(t *testing.T) {
	repo, _, svc := newAuthFixture(t)

	err := svc.DeleteAdmin(context.Background(), nil, repo.admins[0].Id, "10.0.0.1")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, repo.admins, 1)
}

func TestDeleteAdminRemovesAccountAndAudits(t *testing.T) {
	repo, audit, svc := newAuthFixture(t)

	second := &entity.Admin{Id: uuid.New(), Username: "second", IsAdmin: true}
	repo.admins = append(repo.admins, second)

	require.NoError(t, svc.DeleteAdmin(context.Background(), nil, second.Id, "10.0.0.1"))
	assert.Len(t, repo.admins, 1)
	assert.Equal(t, "admin", repo.admins[0].Username)
	assert.Contains(t, audit.actions, entity.ActionUserRemoved)
}

func TestDeleteAdminUnknownId(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	err := svc.DeleteAdmin(context.Background(), nil, uuid.New(), "10.0.0.1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAdmins(t *testing.T) {
	repo, _, svc := newAuthFixture(t)
	repo.admins = append(repo.admins, &entity.Admin{Id: uuid.New(), Username: "editor"})

	admins, err := svc.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "admin", admins[0].Username)
	assert.Equal(t, "editor", admins[1].Username)
}

func TestCheckUsernameAvailability(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	taken, err := svc.CheckUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.False(t, taken.Available)

	free, err := svc.CheckUsername(context.Background(), "someone-new")
	require.NoError(t, err)
	assert.True(t, free.Available)
}
