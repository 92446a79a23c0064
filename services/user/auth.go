package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicbook/models"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const tokenLifetime = 72 * time.Hour

// InitiateOTP generates a login code for the contact, stores it with a
// 5-minute TTL and delivers it over the requested channel. Unknown contacts
// get a fresh patient account so sign-up and sign-in are the same flow.
func (s *DefaultUserService) InitiateOTP(ctx context.Context, req models.InitiateOTPRequest) error {
	contact, byEmail, err := contactOf(req.Email, req.Phone)
	if err != nil {
		return err
	}

	if _, err := s.lookup(ctx, byEmail, contact); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("failed to look up account: %w", err)
		}
		newUser := models.User{Role: models.RolePatient}
		if byEmail {
			newUser.Email = contact
		} else {
			newUser.Phone = contact
		}
		if _, err := s.Repo.Create(ctx, newUser); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
	}

	otp, err := utils.GenerateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := utils.StoreOTP(ctx, contact, otp); err != nil {
		return err
	}

	message := fmt.Sprintf("Your ClinicBook verification code is %s. It expires in 5 minutes.", otp)
	channel := req.Channel
	if channel == "" {
		if byEmail {
			channel = "email"
		} else {
			channel = "whatsapp"
		}
	}

	switch channel {
	case "email":
		if !byEmail {
			return fmt.Errorf("email channel requires an email contact")
		}
		if err := s.Notification.SendEmail(contact, "Your ClinicBook login code", message); err != nil {
			return fmt.Errorf("failed to send OTP: %w", err)
		}
	case "whatsapp":
		if byEmail {
			return fmt.Errorf("whatsapp channel requires a phone contact")
		}
		if err := s.Notification.SendWhatsApp(contact, message); err != nil {
			return fmt.Errorf("failed to send OTP: %w", err)
		}
	default:
		return fmt.Errorf("unsupported OTP channel %q", channel)
	}

	utils.GetLogger().Info("OTP initiated", zap.String("contact", contact), zap.String("channel", channel))
	return nil
}

// VerifyOTP consumes the pending code and, on success, returns a signed JWT
// plus the account. The token hash is cached so middleware can check
// revocation without re-reading Mongo.
func (s *DefaultUserService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (string, *models.User, error) {
	contact, byEmail, err := contactOf(req.Email, req.Phone)
	if err != nil {
		return "", nil, err
	}

	if err := utils.VerifyAndConsumeOTP(ctx, contact, req.OTP); err != nil {
		return "", nil, err
	}

	account, err := s.lookup(ctx, byEmail, contact)
	if err != nil {
		return "", nil, fmt.Errorf("account not found: %w", err)
	}

	token, err := utils.GenerateToken(account.ID, account.Role, tokenLifetime)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	authKey := utils.AuthCachePrefix + account.ID
	if err := utils.GetAuthCacheClient().Set(ctx, authKey, utils.HashToken(token), tokenLifetime).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token", zap.Error(err))
	}

	return token, account, nil
}

func (s *DefaultUserService) lookup(ctx context.Context, byEmail bool, contact string) (*models.User, error) {
	if byEmail {
		return s.Repo.GetByEmail(ctx, contact)
	}
	return s.Repo.GetByPhone(ctx, contact)
}

func contactOf(email, phone string) (string, bool, error) {
	switch {
	case email != "":
		return email, true, nil
	case phone != "":
		return phone, false, nil
	default:
		return "", false, fmt.Errorf("email or phone is required")
	}
}
