package service

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"katering/internal/domain"
	"katering/internal/dto"
	apperrors "katering/internal/errors"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) (uint, error)
	FindPending(ctx context.Context) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateStatus(ctx context.Context, id uint, status domain.UserStatus) error
	PromoteToAdmin(ctx context.Context, id uint) error
	UpdateRole(ctx context.Context, id uint, role domain.UserRole) error
}

type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

// AuthService implements registration, login and the admin-side account
// management. New client accounts start pending and cannot log in until an
// admin approves them.
type AuthService struct {
	users      UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     *zap.Logger
}

func NewAuthService(users UserRepository, tokens TokenIssuer, bcryptCost int, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	userID, err := s.users.Insert(ctx, domain.User{
		Nama:         req.Nama,
		Email:        req.Email,
		PasswordHash: string(hash),
		NoTelepon:    req.NoTelepon,
		Alamat:       req.Alamat,
		Status:       domain.UserStatusPending,
		Role:         domain.RoleClient,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint("userId", userID), zap.String("email", req.Email))

	return &dto.RegisterResponse{
		Message: "Registrasi berhasil, menunggu persetujuan admin",
		UserID:  userID,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("validation failed",
			apperrors.ValidationDetail{Field: "email", Message: "email and password are required"},
		)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewUnauthorizedError("Email atau password salah")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("Email atau password salah")
	}

	// Only clients go through the approval gate; admins log in regardless.
	if user.Role == domain.RoleClient {
		switch user.Status {
		case domain.UserStatusPending:
			return nil, apperrors.NewForbiddenError("Akun Anda masih menunggu persetujuan admin")
		case domain.UserStatusRejected:
			return nil, apperrors.NewForbiddenError("Akun Anda ditolak")
		}
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login berhasil",
		Token:   token,
		User:    mapUser(*user),
	}, nil
}

func (s *AuthService) PendingUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.users.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.UserListResponse{Users: mapUsers(users)}, nil
}

func (s *AuthService) AllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.UserListResponse{Users: mapUsers(users)}, nil
}

func (s *AuthService) UpdateUserStatus(ctx context.Context, id uint, status domain.UserStatus) error {
	if !status.Valid() {
		return apperrors.NewValidationError("Status tidak valid", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}

	if err := s.users.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info("user status updated", zap.Uint("userId", id), zap.String("status", string(status)))
	return nil
}

func (s *AuthService) UpdateUserRole(ctx context.Context, id uint, role domain.UserRole) error {
	if !role.Valid() {
		return apperrors.NewValidationError("Role tidak valid", apperrors.ValidationDetail{
			Field:   "role",
			Message: "role must be client or admin",
		})
	}

	var err error
	if role == domain.RoleAdmin {
		err = s.users.PromoteToAdmin(ctx, id)
	} else {
		err = s.users.UpdateRole(ctx, id, role)
	}
	if err != nil {
		return err
	}

	s.logger.Info("user role updated", zap.Uint("userId", id), zap.String("role", string(role)))
	return nil
}

// CreateAdmin registers a staff account. Admin accounts skip the approval
// queue entirely.
func (s *AuthService) CreateAdmin(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	userID, err := s.users.Insert(ctx, domain.User{
		Nama:         req.Nama,
		Email:        req.Email,
		PasswordHash: string(hash),
		NoTelepon:    req.NoTelepon,
		Alamat:       req.Alamat,
		Status:       domain.UserStatusApproved,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message: "Admin berhasil dibuat",
		UserID:  userID,
	}, nil
}

func validateRegisterRequest(req dto.RegisterRequest) error {
	var details []apperrors.ValidationDetail

	if req.Nama == "" {
		details = append(details, apperrors.ValidationDetail{Field: "nama", Message: "nama is required"})
	}
	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func mapUsers(users []domain.User) []dto.UserDTO {
	return lo.Map(users, func(u domain.User, _ int) dto.UserDTO {
		return mapUser(u)
	})
}

func mapUser(u domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Nama:      u.Nama,
		Email:     u.Email,
		NoTelepon: u.NoTelepon,
		Alamat:    u.Alamat,
		Status:    string(u.Status),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
