package service

import "github.com/darulriyan/aplikasi-dashboard/config"

func NewSettings(cfg config.Config) (Settings, error) {
	opts, err := cfg.Console.TableOptions()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Options:       opts,
		PageSize:      cfg.Console.PageSize,
		MaxPageSize:   cfg.Console.MaxPageSize,
		AdminEmail:    cfg.Auth.Email,
		AdminPassword: cfg.Auth.Password,
		SessionTTL:    cfg.Auth.SessionTTL(),
	}, nil
}
