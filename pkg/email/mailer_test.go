package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jnbao2020/saleor/pkg/email"
)

// MockEmailSender is a mock implementation of EmailSender for testing
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  email.SendEmailParams
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid params",
			params: email.SendEmailParams{
				From:     "Store <store@example.com>",
				SendTo:   []string{"user@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
				Tag:      "test",
			},
			wantErr: false,
		},
		{
			name: "valid params with bare from address",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"user@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: false,
		},
		{
			name: "valid params with multiple recipients",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"one@example.com", "two@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: false,
		},
		{
			name: "empty From",
			params: email.SendEmailParams{
				From:     "",
				SendTo:   []string{"user@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "From is required",
		},
		{
			name: "From with line break",
			params: email.SendEmailParams{
				From:     "store@example.com\nBcc: attacker@example.com",
				SendTo:   []string{"user@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "From must not contain line breaks",
		},
		{
			name: "From with carriage return",
			params: email.SendEmailParams{
				From:     "store@example.com\rX-Oops: hi",
				SendTo:   []string{"user@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "From must not contain line breaks",
		},
		{
			name: "empty SendTo",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   nil,
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "SendTo is required",
		},
		{
			name: "whitespace only recipient",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"   "},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "SendTo is required",
		},
		{
			name: "invalid email format",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"invalid-email"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "SendTo must be a valid email address",
		},
		{
			name: "invalid email missing domain",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"user@"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "SendTo must be a valid email address",
		},
		{
			name: "one bad recipient among good ones",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"good@example.com", "@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "SendTo must be a valid email address",
		},
		{
			name: "empty Subject",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"user@example.com"},
				Subject:  "",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
			errMsg:  "Subject is required",
		},
		{
			name: "empty BodyHTML",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"user@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "",
			},
			wantErr: true,
			errMsg:  "BodyHTML is required",
		},
		{
			name: "complex valid recipient",
			params: email.SendEmailParams{
				From:     "store@example.com",
				SendTo:   []string{"test.user+tag@sub.example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: false,
		},
		{
			name: "utf-8 display name in From",
			params: email.SendEmailParams{
				From:     "徐 欣 <hello@example.com>",
				SendTo:   []string{"user@example.com"},
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, email.ErrInvalidParams)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful send with tag", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		sender := email.NewDevSender(tempDir)

		params := email.SendEmailParams{
			From:     "Store <store@example.com>",
			SendTo:   []string{"user@example.com"},
			Subject:  "Test Email",
			BodyHTML: "<p>Test content</p>",
			Tag:      "welcome",
		}

		err := sender.SendEmail(ctx, params)
		assert.NoError(t, err)

		files, err := os.ReadDir(tempDir)
		assert.NoError(t, err)
		assert.Len(t, files, 2) // HTML + JSON files

		var htmlFile, jsonFile string
		for _, file := range files {
			if strings.HasSuffix(file.Name(), ".html") {
				htmlFile = filepath.Join(tempDir, file.Name())
			}
			if strings.HasSuffix(file.Name(), ".json") {
				jsonFile = filepath.Join(tempDir, file.Name())
			}
		}

		assert.NotEmpty(t, htmlFile)
		assert.NotEmpty(t, jsonFile)

		htmlContent, err := os.ReadFile(htmlFile)
		assert.NoError(t, err)
		assert.Equal(t, "<p>Test content</p>", string(htmlContent))

		jsonContent, err := os.ReadFile(jsonFile)
		assert.NoError(t, err)
		var metadata map[string]any
		err = json.Unmarshal(jsonContent, &metadata)
		assert.NoError(t, err)
		assert.Equal(t, "Store <store@example.com>", metadata["from"])
		assert.Equal(t, []any{"user@example.com"}, metadata["send_to"])
		assert.Equal(t, "Test Email", metadata["subject"])
		assert.Equal(t, "welcome", metadata["tag"])
		assert.NotEmpty(t, metadata["timestamp"])
	})

	t.Run("successful send without tag uses subject", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		sender := email.NewDevSender(tempDir)

		params := email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"user@example.com"},
			Subject:  "Password Reset",
			BodyHTML: "<p>Reset your password</p>",
		}

		err := sender.SendEmail(ctx, params)
		assert.NoError(t, err)

		files, err := os.ReadDir(tempDir)
		assert.NoError(t, err)
		assert.Len(t, files, 2)

		found := false
		for _, file := range files {
			if strings.Contains(file.Name(), "password_reset") {
				found = true
				break
			}
		}
		assert.True(t, found, "Expected filename to contain sanitized subject")
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		sender := email.NewDevSender(tempDir)

		params := email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   nil, // Invalid
			Subject:  "Test Email",
			BodyHTML: "<p>Test content</p>",
		}

		err := sender.SendEmail(ctx, params)
		assert.Error(t, err)
		assert.ErrorIs(t, err, email.ErrInvalidParams)

		files, err := os.ReadDir(tempDir)
		assert.NoError(t, err)
		assert.Len(t, files, 0)
	})

	t.Run("directory creation error", func(t *testing.T) {
		t.Parallel()

		invalidDir := "/dev/null/cannot-create-here"
		sender := email.NewDevSender(invalidDir)

		params := email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"user@example.com"},
			Subject:  "Test Email",
			BodyHTML: "<p>Test content</p>",
		}

		err := sender.SendEmail(ctx, params)
		assert.Error(t, err)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "failed to create directory")
	})

	t.Run("unicode content preserved", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		sender := email.NewDevSender(tempDir)

		params := email.SendEmailParams{
			From:     "徐 欣 <hello@example.com>",
			SendTo:   []string{"user@example.com"},
			Subject:  "Unicode Test 🚀",
			BodyHTML: "<p>Test with unicode: 你好世界 🌍</p>",
			Tag:      "unicode-test",
		}

		err := sender.SendEmail(ctx, params)
		assert.NoError(t, err)

		files, err := os.ReadDir(tempDir)
		assert.NoError(t, err)
		assert.Len(t, files, 2)

		for _, file := range files {
			if strings.HasSuffix(file.Name(), ".html") {
				content, err := os.ReadFile(filepath.Join(tempDir, file.Name()))
				assert.NoError(t, err)
				assert.Contains(t, string(content), "你好世界 🌍")
				break
			}
		}
	})
}

func TestEmailSender_Interface(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("mock sender successful send", func(t *testing.T) {
		t.Parallel()

		mockSender := new(MockEmailSender)
		params := email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"user@example.com"},
			Subject:  "Test Email",
			BodyHTML: "<p>Test content</p>",
			Tag:      "test",
		}

		mockSender.On("SendEmail", ctx, params).Return(nil)

		err := mockSender.SendEmail(ctx, params)
		assert.NoError(t, err)

		mockSender.AssertExpectations(t)
	})

	t.Run("mock sender failed send", func(t *testing.T) {
		t.Parallel()

		mockSender := new(MockEmailSender)
		params := email.SendEmailParams{
			From:     "store@example.com",
			SendTo:   []string{"user@example.com"},
			Subject:  "Test Email",
			BodyHTML: "<p>Test content</p>",
		}

		mockSender.On("SendEmail", ctx, params).Return(email.ErrFailedToSendEmail)

		err := mockSender.SendEmail(ctx, params)
		assert.Error(t, err)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)

		mockSender.AssertExpectations(t)
	})
}
