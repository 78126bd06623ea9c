package service

import (
	"context"
	"strings"

	"github.com/MrityunjayMaharana/Vendor-App/config"
	"github.com/MrityunjayMaharana/Vendor-App/internal/domain"
	"github.com/MrityunjayMaharana/Vendor-App/internal/dto"
	"github.com/MrityunjayMaharana/Vendor-App/internal/infrastructure/filestore"
	"github.com/MrityunjayMaharana/Vendor-App/internal/repository"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/errs"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo      repository.UserRepository
	fileStore filestore.FileStore
	config    config.Config
}

func CreateNewUserService(repo repository.UserRepository, fileStore filestore.FileStore, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, fileStore: fileStore, config: config}
}

func (s *UserServiceImpl) Register(ctx context.Context, data dto.RegisterRequest) (err error) {
	if data.Name == "" || data.Email == "" || data.Password == "" || data.ShopName == "" {
		return errs.ErrFillAllFields
	}

	if data.Password != data.Password2 {
		return errs.ErrPasswordMismatch
	}

	// Exact-case lookup. Login lowercases its email but registration does
	// not, so case-variant addresses register as distinct accounts.
	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userEnt := domain.User{
		Name:           data.Name,
		Email:          data.Email,
		ShopName:       data.ShopName,
		Location:       data.Location,
		Contact:        data.Contact,
		HashedPassword: string(hash),
		Products:       0,
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error) {
	if payload.Email == "" || payload.Password == "" {
		return respPayload, errs.ErrFillAllFields
	}

	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(payload.Email))
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return respPayload, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrWrongPassword
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, s.config.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.ID = user.ID.Hex()
	respPayload.Name = user.Name

	return
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (respPayload dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) GetVendors(ctx context.Context) (respPayload []dto.UserResponse, err error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return
	}

	respPayload = make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		respPayload = append(respPayload, toUserResponse(user))
	}

	return
}

func (s *UserServiceImpl) ChangeAvatar(ctx context.Context, userID string, file *dto.FileUpload) (respPayload dto.UserResponse, err error) {
	if file == nil || len(file.Data) == 0 {
		return respPayload, errs.ErrNoFileUploaded
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	// Removing the stale avatar is best-effort; the new upload proceeds
	// even when the old file is already gone.
	if user.Avatar != "" {
		if removeErr := s.fileStore.Remove(user.Avatar); removeErr != nil {
			log.Error().Err(removeErr).Str("component", "ChangeAvatar").Msg("stale avatar not removed")
		}
	}

	filename, err := s.fileStore.Save(file.Data, file.Name, filestore.MaxAvatarSize)
	if err != nil {
		return
	}

	err = s.repo.UpdateUserAvatar(ctx, userID, filename)
	if err != nil {
		return
	}

	user.Avatar = filename

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) EditUser(ctx context.Context, payload dto.EditUserRequest) (respPayload dto.UserResponse, err error) {
	if payload.Name == "" || payload.Email == "" || payload.CurrentPassword == "" || payload.NewPassword == "" {
		return respPayload, errs.ErrFillAllFields
	}

	user, err := s.repo.GetUserByID(ctx, payload.ID)
	if err != nil {
		return
	}

	emailOwner, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if !emailOwner.ID.IsZero() && emailOwner.ID.Hex() != payload.ID {
		return respPayload, errs.ErrEmailAlreadyUsed
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.CurrentPassword))
	if err != nil {
		return respPayload, errs.ErrWrongPassword
	}

	if payload.NewPassword != payload.NewConfirmPassword {
		return respPayload, errs.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	updated := domain.User{
		ID:             user.ID,
		Name:           payload.Name,
		Email:          payload.Email,
		ShopName:       payload.ShopName,
		Location:       payload.Location,
		Contact:        payload.Contact,
		HashedPassword: string(hash),
		Avatar:         user.Avatar,
		Products:       user.Products,
	}

	err = s.repo.UpdateUserProfile(ctx, updated)
	if err != nil {
		return
	}

	return toUserResponse(updated), nil
}

func toUserResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID.Hex(),
		Name:     user.Name,
		Email:    user.Email,
		ShopName: user.ShopName,
		Location: user.Location,
		Contact:  user.Contact,
		Avatar:   user.Avatar,
		Products: user.Products,
	}
}
