package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stockfolio/internal/client"
)

// Stored credentials play the role the browser's local storage played for the
// original frontend: the issued token and identity survive between runs and
// are discarded as soon as the API answers 401.

func credentialsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "stockfolio", "credentials.json"), nil
}

func saveCredentials(user *client.AuthUser) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func loadCredentials() (*client.AuthUser, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var user client.AuthUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, nil // corrupted file, treat as logged out
	}
	return &user, nil
}

func clearCredentials() error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// newClient builds an API client, attaching the stored token when present.
func newClient() *client.Client {
	c := client.New(*apiURL)
	if user, err := loadCredentials(); err == nil && user != nil {
		c.SetToken(user.Token)
	}
	return c
}

// reportAPIError prints the error; a 401 also drops stored credentials,
// mirroring the original frontend behavior.
func reportAPIError(err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		_ = clearCredentials()
		fmt.Fprintln(os.Stderr, "Error: unauthorized; stored credentials cleared, please login again")
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
