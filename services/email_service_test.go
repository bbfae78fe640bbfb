package services

import (
	"context"
	"testing"

	"github.com/motherproperties/website-backend/config"
	"github.com/motherproperties/website-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Resend client
type mockEmailsService struct {
	mock.Mock
}

func (m *mockEmailsService) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Update(params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) UpdateWithContext(ctx context.Context, params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Cancel(id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) CancelWithContext(ctx context.Context, id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Get(id string) (*resend.Email, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

func (m *mockEmailsService) GetWithContext(ctx context.Context, id string) (*resend.Email, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

// Mock registry that doesn't actually register metrics
type mockRegistry struct{}

func (m *mockRegistry) Register(c prometheus.Collector) error   { return nil }
func (m *mockRegistry) MustRegister(cs ...prometheus.Collector) {}
func (m *mockRegistry) Unregister(c prometheus.Collector) bool  { return true }

func testEmailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		FromName:           "Mother Properties",
		FromAddress:        "onboarding@resend.dev",
		OperatorAddress:    "operator@example.com",
		ResendAPIKey:       "test-api-key",
		SendTimeoutSeconds: 5,
	}
}

func TestNewEmailService(t *testing.T) {
	cfg := testEmailConfig()

	service := NewEmailServiceWithRegistry(cfg, &mockRegistry{})

	assert.NotNil(t, service)
	assert.Equal(t, cfg, service.config)
	assert.NotNil(t, service.client)
	assert.NotNil(t, service.metrics)
}

func TestSendEmail(t *testing.T) {
	tests := []struct {
		name        string
		emailData   types.EmailData
		setupMock   func(*mockEmailsService)
		expectError bool
	}{
		{
			name: "successful contact confirmation",
			emailData: types.EmailData{
				To:       "jane@example.com",
				Subject:  "Thank you for contacting Mother Properties",
				Template: types.TemplateContactConfirmation,
				TemplateData: map[string]interface{}{
					"Name":    "Jane Doe",
					"BaseURL": "https://www.motherproperties.net",
				},
			},
			setupMock: func(m *mockEmailsService) {
				m.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
					Return(&resend.SendEmailResponse{Id: "test-id"}, nil)
			},
			expectError: false,
		},
		{
			name: "successful operator alert",
			emailData: types.EmailData{
				To:       "operator@example.com",
				Subject:  "New Contact Inquiry from Jane Doe",
				Template: types.TemplateContactAlert,
				TemplateData: map[string]interface{}{
					"Name":         "Jane Doe",
					"Email":        "jane@example.com",
					"Phone":        "9876543210",
					"InterestedIn": "general",
					"Message":      "Interested in plots",
				},
			},
			setupMock: func(m *mockEmailsService) {
				m.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
					Return(&resend.SendEmailResponse{Id: "test-id"}, nil)
			},
			expectError: false,
		},
		{
			name: "failed email send",
			emailData: types.EmailData{
				To:       "jane@example.com",
				Subject:  "Thank you for contacting Mother Properties",
				Template: types.TemplateContactConfirmation,
				TemplateData: map[string]interface{}{
					"Name":    "Jane Doe",
					"BaseURL": "https://www.motherproperties.net",
				},
			},
			setupMock: func(m *mockEmailsService) {
				m.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
					Return(nil, assert.AnError)
			},
			expectError: true,
		},
		{
			name: "unknown template",
			emailData: types.EmailData{
				To:           "jane@example.com",
				Subject:      "Oops",
				Template:     types.EmailTemplate("no_such_template"),
				TemplateData: map[string]interface{}{},
			},
			setupMock: func(m *mockEmailsService) {
				// No outbound call is attempted for an unknown template.
			},
			expectError: true,
		},
		{
			name: "missing required template field",
			emailData: types.EmailData{
				To:       "operator@example.com",
				Subject:  "New Catalogue Download Request - Jane",
				Template: types.TemplateCatalogueAlert,
				TemplateData: map[string]interface{}{
					"Name":  "Jane",
					"Email": "jane@example.com",
					// Missing Phone and Timestamp
				},
			},
			setupMock: func(m *mockEmailsService) {
				// Validation fails before any outbound call.
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmails := &mockEmailsService{}
			if tt.setupMock != nil {
				tt.setupMock(mockEmails)
			}

			service := NewEmailServiceWithRegistry(testEmailConfig(), &mockRegistry{})
			service.client.Emails = mockEmails

			err := service.SendEmail(context.Background(), tt.emailData)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockEmails.AssertExpectations(t)
		})
	}
}

func TestEmailMetrics(t *testing.T) {
	service := NewEmailServiceWithRegistry(testEmailConfig(), &mockRegistry{})
	mockEmails := &mockEmailsService{}
	service.client.Emails = mockEmails

	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Return(&resend.SendEmailResponse{Id: "test-id"}, nil).Once()

	emailData := types.EmailData{
		To:       "jane@example.com",
		Subject:  "Thank you for contacting Mother Properties",
		Template: types.TemplateContactConfirmation,
		TemplateData: map[string]interface{}{
			"Name":    "Jane Doe",
			"BaseURL": "https://www.motherproperties.net",
		},
	}

	initialSentCount := testGetCounterValue(service.metrics.sentCount)
	initialErrorCount := testGetCounterValue(service.metrics.errorCount)

	err := service.SendEmail(context.Background(), emailData)
	assert.NoError(t, err)

	assert.Equal(t, initialSentCount+1, testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, initialErrorCount, testGetCounterValue(service.metrics.errorCount))

	// Template validation error increments the error counter only.
	invalidEmailData := types.EmailData{
		To:           "jane@example.com",
		Subject:      "Thank you for contacting Mother Properties",
		Template:     types.TemplateContactConfirmation,
		TemplateData: map[string]interface{}{},
	}

	err = service.SendEmail(context.Background(), invalidEmailData)
	assert.Error(t, err)

	assert.Equal(t, initialSentCount+1, testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, initialErrorCount+1, testGetCounterValue(service.metrics.errorCount))

	// Provider failure increments the error counter too.
	mockEmails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Return(nil, assert.AnError).Once()

	err = service.SendEmail(context.Background(), emailData)
	assert.Error(t, err)

	assert.Equal(t, initialSentCount+1, testGetCounterValue(service.metrics.sentCount))
	assert.Equal(t, initialErrorCount+2, testGetCounterValue(service.metrics.errorCount))

	mockEmails.AssertExpectations(t)
}

// Helper function to get counter value
func testGetCounterValue(counter prometheus.Counter) float64 {
	var m dto.Metric
	counter.Write(&m)
	return *m.Counter.Value
}
