package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/motherproperties/website-backend/config"
	"github.com/motherproperties/website-backend/logger"
	"github.com/motherproperties/website-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService dispatches notification emails through Resend. One attempt
// per send, no retry or queueing; callers decide how to treat a failure.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress,
		"operator", logger.MaskEmail(cfg.OperatorAddress))
	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "motherproperties_email_send_duration_seconds",
			Help:    "Time taken to send notification emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "motherproperties_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "motherproperties_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// SendEmail renders the message's template and dispatches it through
// Resend. The outbound call is bounded by the configured send timeout.
func (s *EmailService) SendEmail(ctx context.Context, data types.EmailData) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	body, ok := emailTemplates[data.Template]
	if !ok {
		s.metrics.errorCount.Inc()
		err := fmt.Errorf("unknown email template: %s", data.Template)
		log.Errorw("Invalid email data", "error", err)
		return err
	}

	// Validate required template data
	for _, field := range requiredTemplateFields[data.Template] {
		if _, ok := data.TemplateData[field]; !ok {
			s.metrics.errorCount.Inc()
			err := fmt.Errorf("missing required template field: %s", field)
			log.Errorw("Invalid template data", "error", err, "template", data.Template)
			return err
		}
	}

	tmpl, err := template.New(string(data.Template)).Parse(body)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to parse email template", "error", err)
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var htmlContent bytes.Buffer
	if err := tmpl.Execute(&htmlContent, data.TemplateData); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute email template", "error", err)
		return fmt.Errorf("failed to execute template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{data.To},
		Subject: data.Subject,
		Html:    htmlContent.String(),
	}

	sendCtx, cancel := context.WithTimeout(ctx, time.Duration(s.config.SendTimeoutSeconds)*time.Second)
	defer cancel()

	_, err = s.client.Emails.SendWithContext(sendCtx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"to", logger.MaskEmail(data.To),
			"subject", data.Subject)
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent successfully",
		"to", logger.MaskEmail(data.To),
		"subject", data.Subject)

	return nil
}

// requiredTemplateFields lists the template data each body cannot render
// without. Missing fields fail before any outbound call is made.
var requiredTemplateFields = map[types.EmailTemplate][]string{
	types.TemplateContactConfirmation: {"Name", "BaseURL"},
	types.TemplateContactAlert:        {"Name", "Email", "Phone", "InterestedIn", "Message"},
	types.TemplateCatalogueAlert:      {"Name", "Email", "Phone", "Timestamp"},
}

var emailTemplates = map[types.EmailTemplate]string{
	types.TemplateContactConfirmation: contactConfirmationTemplate,
	types.TemplateContactAlert:        contactAlertTemplate,
	types.TemplateCatalogueAlert:      catalogueAlertTemplate,
}

// Template constants

const contactConfirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Thank you for contacting Mother Properties</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f8f5f0; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 30px; border-radius: 8px;">
        <h2 style="color: #1e5631;">Thank you for reaching out!</h2>
        <p>Dear {{.Name}},</p>
        <p>We have received your inquiry and will get back to you shortly. Our team typically responds within 24-48 business hours.</p>
        <p>In the meantime, feel free to explore our website to learn more about our projects:</p>
        <ul>
            <li><a href="{{.BaseURL}}/coffeeprince">Coffee Prince</a></li>
            <li><a href="{{.BaseURL}}/about">About Us</a></li>
            <li><a href="{{.BaseURL}}/projects">All Projects</a></li>
        </ul>
        <p>Best regards,<br>Mother Properties Team<br>
        +91 98450 42789 | +91 90350 51133<br>
        motherpropertiesblr@gmail.com</p>
    </div>
</body>
</html>`

const contactAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Inquiry</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto;">
        <h2 style="color: #1e5631;">New Contact Inquiry</h2>
        <div style="background-color: #f8f5f0; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
            <p style="margin: 10px 0;"><strong>Name:</strong> {{.Name}}</p>
            <p style="margin: 10px 0;"><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
            <p style="margin: 10px 0;"><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
            <p style="margin: 10px 0;"><strong>Interested In:</strong> {{.InterestedIn}}</p>
            <p style="margin: 10px 0;"><strong>Message:</strong></p>
            <p style="margin: 10px 0; white-space: pre-line;">{{.Message}}</p>
        </div>
        <p style="color: #666; font-size: 14px;">
            This inquiry was submitted via the website contact form.
            Please respond to {{.Email}}.
        </p>
    </div>
</body>
</html>`

const catalogueAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Catalogue Download Request</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto;">
        <h2 style="color: #1e5631;">New Catalogue Download Request</h2>
        <div style="background-color: #f8f5f0; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
            <p style="margin: 10px 0;"><strong>Name:</strong> {{.Name}}</p>
            <p style="margin: 10px 0;"><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
            <p style="margin: 10px 0;"><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
            <p style="margin: 10px 0;"><strong>Request Time:</strong> {{.Timestamp}}</p>
        </div>
        <p style="color: #666; font-size: 14px;">
            This is an automated notification. The user requested to download
            the Coffee Prince Catalogue. You may follow up with them for
            further information.
        </p>
    </div>
</body>
</html>`
