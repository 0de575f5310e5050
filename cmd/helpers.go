package cmd

import (
	"fmt"

	"github.com/howell-dev/portfolio/internal/config"
	"github.com/howell-dev/portfolio/internal/emailjs"
	"github.com/howell-dev/portfolio/internal/store"
)

// newEmailClient builds the EmailJS client from the loaded configuration.
func newEmailClient(cfg config.Config) *emailjs.Client {
	return emailjs.New(emailjs.Config{
		ServiceID:  cfg.EmailJS.ServiceID,
		TemplateID: cfg.EmailJS.TemplateID,
		PublicKey:  cfg.EmailJS.PublicKey,
		PrivateKey: cfg.EmailJS.PrivateKey,
		Endpoint:   cfg.EmailJS.Endpoint,
		Timeout:    cfg.EmailJS.Timeout,
	})
}

func openStore(cfg config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.DatabasePath, err)
	}
	return db, nil
}
