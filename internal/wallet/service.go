// Package wallet simulates connecting a crypto wallet to a garden.
// No network calls are made; the balance is a fixed placeholder.
package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/TrenchGarden_Go/internal/concurrency"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
	"github.com/osse101/TrenchGarden_Go/internal/tracing"
)

const (
	hexPrefix        = "0x"
	hexAddressLength = 42 // "0x" plus 40 hex digits
)

// Service defines the wallet flow
type Service interface {
	// Connect validates address, waits the simulated handshake delay and
	// records the address on the garden
	Connect(ctx context.Context, username, address string) (*domain.WalletConnection, error)
}

type service struct {
	repo  repository.Garden
	locks *concurrency.LockManager
	bus   event.Bus
	delay time.Duration
}

// NewService creates a new wallet service. bus may be nil.
func NewService(repo repository.Garden, locks *concurrency.LockManager, bus event.Bus, delay time.Duration) Service {
	return &service{
		repo:  repo,
		locks: locks,
		bus:   bus,
		delay: delay,
	}
}

// ValidateAddress rejects empty addresses and malformed 0x addresses.
// Other formats are accepted as-is.
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("%w: address is required", domain.ErrInvalidWalletAddress)
	}
	if !strings.HasPrefix(strings.ToLower(address), hexPrefix) {
		return nil
	}
	if len(address) != hexAddressLength {
		return fmt.Errorf("%w: expected %d characters, got %d", domain.ErrInvalidWalletAddress, hexAddressLength, len(address))
	}
	if _, err := hex.DecodeString(address[len(hexPrefix):]); err != nil {
		return fmt.Errorf("%w: not hexadecimal", domain.ErrInvalidWalletAddress)
	}
	return nil
}

// Connect runs the simulated wallet connection
func (s *service) Connect(ctx context.Context, username, address string) (*domain.WalletConnection, error) {
	ctx, span := tracing.Start(ctx, SpanConnect)
	defer span.End()

	address = strings.TrimSpace(address)
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}

	// fail fast before the handshake wait
	if _, err := s.repo.Get(ctx, username); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	if err := s.record(ctx, username, address); err != nil {
		return nil, err
	}

	conn := &domain.WalletConnection{
		Username: username,
		Address:  address,
		Tokens:   domain.WalletTokenBalance,
		Message:  fmt.Sprintf(domain.WalletConnectedFormat, domain.WalletTokenBalance),
	}

	logger.FromContext(ctx).Info(LogMsgWalletConnected, "username", username)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewWalletConnectedEvent(*conn)); err != nil {
			logger.FromContext(ctx).Error(LogMsgPublishWalletFailed, "username", username, "error", err)
		}
	}
	return conn, nil
}

func (s *service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) record(ctx context.Context, username, address string) error {
	unlock := s.locks.Lock(username)
	defer unlock()

	g, err := s.repo.Get(ctx, username)
	if err != nil {
		return err
	}
	g.WalletAddress = address
	g.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, g); err != nil {
		return fmt.Errorf("failed to save wallet address: %w", err)
	}
	return nil
}
