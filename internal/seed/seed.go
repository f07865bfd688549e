// Package seed loads registry fixtures from YAML files.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/user-registry/internal/domain"
	"github.com/spec-kit/user-registry/internal/service"
)

// File is the on-disk seed format.
type File struct {
	Users []UserEntry `yaml:"users"`
}

// UserEntry describes one user to register.
type UserEntry struct {
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	Age         int    `yaml:"age"`
	IsAdmin     bool   `yaml:"is_admin"`
	Deactivated bool   `yaml:"deactivated"`
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &file, nil
}

// Apply registers every entry in order and deactivates the flagged ones.
// It stops at the first entry that fails validation.
func Apply(ctx context.Context, users *service.UserService, file *File) ([]domain.User, error) {
	if file == nil {
		return nil, nil
	}

	created := make([]domain.User, 0, len(file.Users))
	for i, entry := range file.Users {
		user, err := users.CreateUser(ctx, service.UserCreateInput{
			Name:    entry.Name,
			Email:   entry.Email,
			Age:     entry.Age,
			IsAdmin: entry.IsAdmin,
		})
		if err != nil {
			return created, fmt.Errorf("seed entry %d (%q): %w", i, entry.Email, err)
		}
		if entry.Deactivated && users.DeactivateUser(ctx, user.ID) {
			user.Status = domain.UserStatusInactive
		}
		created = append(created, *user)
	}
	return created, nil
}
