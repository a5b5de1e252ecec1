package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/repository"
)

type ConfigServicer interface {
	GetConfig(ctx context.Context) (repository.RamadanConfig, error)
}

type config struct {
	configs configs.Configs
}

func NewConfigService(configs configs.Configs) ConfigServicer {
	return &config{
		configs: configs,
	}
}

func (c config) GetConfig(ctx context.Context) (repository.RamadanConfig, error) {
	ramadanConfig, err := retryutil.RetryWithData(func() (repository.RamadanConfig, error) {
		return c.configs.Db.Queries.SelectRamadanConfig(ctx)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.RamadanConfig{}, ErrConfigNotFound
		}
		return repository.RamadanConfig{}, fmt.Errorf("failed to select ramadan config: %w", err)
	}

	return ramadanConfig, nil
}
