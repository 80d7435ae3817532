package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/mailer"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/events"
	pktNats "github.com/mp-codespace/masterprima-site-sub001/pkg/nats"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, claims *session.Claims, ipAddress string)
	Me(ctx context.Context, claims *session.Claims) (*dto.AdminDTO, error)
	RegisterAdmin(ctx context.Context, actor *session.Claims, req *dto.RegisterAdminRequest, ipAddress string) (*dto.RegisterAdminResponse, error)
	ListAdmins(ctx context.Context) ([]dto.AdminDTO, error)
	DeleteAdmin(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error
	CheckUsername(ctx context.Context, username string) (*dto.CheckUsernameResponse, error)
	CheckEmail(ctx context.Context, email string) (*dto.CheckEmailResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	codec          *session.Codec
	authCfg        config.AuthConfig
	audit          IAuditService
	emailService   mailer.IEmailService
	redisClient    *redis.Client
	eventPublisher *pktNats.Publisher
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	codec *session.Codec,
	authCfg config.AuthConfig,
	audit IAuditService,
	emailService mailer.IEmailService,
	redisClient *redis.Client,
	eventPublisher *pktNats.Publisher,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		codec:          codec,
		authCfg:        authCfg,
		audit:          audit,
		emailService:   emailService,
		redisClient:    redisClient,
		eventPublisher: eventPublisher,
	}
}

// checkThrottle counts failed attempts per ip+username in Redis. Without
// a Redis client the throttle is disabled.
func (s *authService) checkThrottle(ctx context.Context, ipAddress, username string) error {
	if s.redisClient == nil {
		return nil
	}

	key := fmt.Sprintf("login_attempts:%s:%s", ipAddress, username)
	count, err := s.redisClient.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		// Redis being down must not lock every admin out.
		return nil
	}
	if count >= s.authCfg.LoginAttemptLimit {
		return ErrTooManyAttempts
	}
	return nil
}

func (s *authService) recordFailedAttempt(ctx context.Context, ipAddress, username string) {
	if s.redisClient == nil {
		return
	}
	key := fmt.Sprintf("login_attempts:%s:%s", ipAddress, username)
	pipe := s.redisClient.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 15*time.Minute)
	_, _ = pipe.Exec(ctx)
}

func (s *authService) clearAttempts(ctx context.Context, ipAddress, username string) {
	if s.redisClient == nil {
		return
	}
	_ = s.redisClient.Del(ctx, fmt.Sprintf("login_attempts:%s:%s", ipAddress, username)).Err()
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error) {
	if err := s.checkThrottle(ctx, ipAddress, req.Username); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	// Unknown user and wrong password produce the same error so usernames
	// cannot be enumerated through the login form.
	if admin == nil || admin.PasswordHash == nil {
		s.recordFailedAttempt(ctx, ipAddress, req.Username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedAttempt(ctx, ipAddress, req.Username)
		return nil, ErrInvalidCredentials
	}

	s.clearAttempts(ctx, ipAddress, req.Username)

	token, err := s.codec.Issue(&session.Claims{
		AdminId:   admin.Id,
		Username:  admin.Username,
		IsAdmin:   admin.IsAdmin,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, &admin.Id, entity.ActionLogin, map[string]interface{}{
		"username": admin.Username,
	}, ipAddress)

	if err := s.eventPublisher.Publish(ctx, events.NewEvent(events.TypeAdminLogin, map[string]interface{}{
		"admin_id": admin.Id.String(),
		"username": admin.Username,
	})); err != nil {
		fmt.Printf("Error publishing login event: %v\n", err)
	}

	return &dto.LoginResponse{
		Admin:        toAdminDTO(admin),
		Token:        token,
		CookieMaxAge: s.authCfg.PasswordSessionMaxAge,
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *session.Claims, ipAddress string) {
	// Sessions are stateless; logout is just the audit trail. The
	// controller clears the cookie regardless.
	if claims != nil {
		s.audit.Record(ctx, &claims.AdminId, entity.ActionLogout, map[string]interface{}{
			"username": claims.Username,
		}, ipAddress)
	}
}

func (s *authService) Me(ctx context.Context, claims *session.Claims) (*dto.AdminDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: claims.AdminId})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}

	adminDTO := toAdminDTO(admin)
	return &adminDTO, nil
}

func (s *authService) RegisterAdmin(ctx context.Context, actor *session.Claims, req *dto.RegisterAdminRequest, ipAddress string) (*dto.RegisterAdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %w", ErrConflict)
	}

	existing, err = uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	email := req.Email

	admin := &entity.Admin{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        &email,
		PasswordHash: &hashStr,
		IsAdmin:      req.IsAdmin,
		AuthProvider: entity.AuthProviderEmail,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.AdminRepository().Create(ctx, admin); err != nil {
		return nil, err
	}

	var actorId *uuid.UUID
	if actor != nil {
		actorId = &actor.AdminId
	}
	s.audit.Record(ctx, actorId, entity.ActionCreateAdmin, map[string]interface{}{
		"created_username": admin.Username,
		"is_admin":         admin.IsAdmin,
	}, ipAddress)

	if err := s.eventPublisher.Publish(ctx, events.NewEvent(events.TypeAdminCreated, map[string]interface{}{
		"admin_id": admin.Id.String(),
		"username": admin.Username,
	})); err != nil {
		fmt.Printf("Error publishing admin created event: %v\n", err)
	}

	if s.emailService != nil {
		go func() {
			if emailErr := s.emailService.SendAdminWelcome(email, admin.Username); emailErr != nil {
				fmt.Printf("Error sending admin welcome email: %v\n", emailErr)
			}
		}()
	}

	return &dto.RegisterAdminResponse{Id: admin.Id, Username: admin.Username}, nil
}

func (s *authService) ListAdmins(ctx context.Context) ([]dto.AdminDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	admins, err := uow.AdminRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminDTO, 0, len(admins))
	for _, a := range admins {
		out = append(out, toAdminDTO(a))
	}
	return out, nil
}

func (s *authService) DeleteAdmin(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	target, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	// The credential store must never lose its last admin; a lockout
	// would be unrecoverable through the API.
	if target.IsAdmin {
		count, err := uow.AdminRepository().CountAdmins(ctx)
		if err != nil {
			return err
		}
		if count <= 1 {
			return fmt.Errorf("last admin account %w", ErrConflict)
		}
	}

	if err := uow.AdminRepository().Delete(ctx, id); err != nil {
		return err
	}

	var actorId *uuid.UUID
	if actor != nil {
		actorId = &actor.AdminId
	}
	s.audit.Record(ctx, actorId, entity.ActionUserRemoved, map[string]interface{}{
		"deleted_username": target.Username,
		"deleted_id":       target.Id.String(),
	}, ipAddress)

	return nil
}

func (s *authService) CheckUsername(ctx context.Context, username string) (*dto.CheckUsernameResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	return &dto.CheckUsernameResponse{Available: existing == nil}, nil
}

func (s *authService) CheckEmail(ctx context.Context, email string) (*dto.CheckEmailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	return &dto.CheckEmailResponse{Available: existing == nil}, nil
}

func toAdminDTO(admin *entity.Admin) dto.AdminDTO {
	return dto.AdminDTO{
		Id:           admin.Id,
		Username:     admin.Username,
		Email:        admin.Email,
		IsAdmin:      admin.IsAdmin,
		AuthProvider: string(admin.AuthProvider),
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}
