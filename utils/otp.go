package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrOTPMismatch is returned when the provided OTP does not match the stored one.
var ErrOTPMismatch = fmt.Errorf("OTP is invalid or expired")

// GenerateNumericOTP generates a secure random numeric OTP of the given length.
func GenerateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// StoreOTP caches an OTP for the given contact key with the standard TTL.
func StoreOTP(ctx context.Context, contact, otp string) error {
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}
	key := "otp:" + contact
	if err := client.Set(ctx, key, otp, OTPTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to store OTP")
	}
	return nil
}

// VerifyAndConsumeOTP compares the provided OTP against the stored one for the
// contact and deletes it on success so a code can only be used once.
func VerifyAndConsumeOTP(ctx context.Context, contact, providedOTP string) error {
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}
	key := "otp:" + contact

	storedOTP, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrOTPMismatch
		}
		return fmt.Errorf("failed to read OTP: %w", err)
	}
	if storedOTP != providedOTP {
		return ErrOTPMismatch
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Warn("Failed to delete consumed OTP", zap.Error(err))
	}
	return nil
}
