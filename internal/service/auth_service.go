package service

import (
	"errors"
	"fmt"

	"todo-go/internal/config"
	"todo-go/internal/dto"
	"todo-go/internal/models"
	"todo-go/internal/repository"
	"todo-go/internal/utils"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	tokenRepo  *repository.TokenRepository
	jwtManager *utils.JWTManager
	cfg        *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(
	userRepo *repository.UserRepository,
	tokenRepo *repository.TokenRepository,
	jwtManager *utils.JWTManager,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}

// Register 用户注册，成功后立即为新用户签发凭证
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, string, error) {
	req.Normalize()

	errs := FieldErrors{}
	if req.Username == "" {
		errs["username"] = msgFieldRequired
	} else if !utils.IsValidUsername(req.Username) {
		errs["username"] = msgInvalidUsername
	}
	if req.Email == "" {
		errs["email"] = msgFieldRequired
	} else if !utils.IsValidEmail(req.Email) {
		errs["email"] = msgInvalidEmail
	}
	if req.FirstName == "" {
		errs["first_name"] = msgFieldRequired
	}
	if req.LastName == "" {
		errs["last_name"] = msgFieldRequired
	}
	if req.Password == "" {
		errs["password"] = msgFieldRequired
	}
	if req.Password2 == "" {
		errs["password2"] = msgFieldRequired
	}

	// 两次密码必须完全一致
	if req.Password != "" && req.Password2 != "" && req.Password != req.Password2 {
		errs["password"] = msgPasswordMismatch
	}

	if len(errs) > 0 {
		return nil, "", errs
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashedPassword,
		IsSuperuser:  false,
	}

	// 用户名唯一性交给存储层唯一约束，冲突时转换为业务错误
	if err := s.userRepo.Create(user); err != nil {
		if isUniqueViolation(err) {
			return nil, "", ErrDuplicateUsername
		}
		return nil, "", fmt.Errorf("创建用户失败: %w", err)
	}

	// 签发凭证作为注册的显式步骤
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("签发凭证失败: %w", err)
	}

	return user, token, nil
}

// Login 用户登录。已有凭证仍有效则直接返回，否则签发新凭证并标记created
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Normalize()

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	created := false
	var token string

	stored, err := s.tokenRepo.GetByUserID(user.ID)
	if err == nil {
		if _, verr := s.jwtManager.ValidateToken(stored.Token); verr == nil {
			token = stored.Token
		}
	}

	if token == "" {
		token, err = s.issueToken(user)
		if err != nil {
			return nil, fmt.Errorf("签发凭证失败: %w", err)
		}
		created = true
	}

	return &dto.LoginResponse{
		Token:       token,
		Created:     created,
		IsSuperuser: user.IsSuperuser,
	}, nil
}

// issueToken 为用户签发并保存新凭证
func (s *AuthService) issueToken(user *models.User) (string, error) {
	token, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.IsSuperuser)
	if err != nil {
		return "", err
	}

	if _, err := s.tokenRepo.Upsert(user.ID, token); err != nil {
		return "", err
	}

	return token, nil
}

// InitAdmin 初始化管理员账户，已存在管理员时跳过
func (s *AuthService) InitAdmin() error {
	admin, err := s.userRepo.GetAdmin()
	if err == nil && admin != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Username:     s.cfg.Admin.Username,
		Email:        s.cfg.Admin.Email,
		PasswordHash: hashedPassword,
		IsSuperuser:  true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if isUniqueViolation(err) {
			return errors.New("管理员用户名已被占用")
		}
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	return nil
}
