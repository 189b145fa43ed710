// Package sendgrid sends transactional email through the SendGrid v3
// mail-send API. It is the notification collaborator for captured leads.
package sendgrid

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"

	"github.com/pubnicaragua/investi-documentacion2/internal/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

const mailSendURL = "https://api.sendgrid.com/v3/mail/send"

// leadEmailTemplate renders the internal notification for a new lead
var leadEmailTemplate = template.Must(template.New("lead").Funcs(template.FuncMap{
	"join": func(values []string) string { return strings.Join(values, ", ") },
}).Parse(`
<h2>Nuevo lead registrado</h2>
<table cellpadding="4">
  <tr><td><b>Nombre</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
  {{if .Phone}}<tr><td><b>Teléfono</b></td><td>{{.Phone}}</td></tr>{{end}}
  {{if .Age}}<tr><td><b>Edad</b></td><td>{{.Age}}</td></tr>{{end}}
  {{if .Goals}}<tr><td><b>Metas</b></td><td>{{join .Goals}}</td></tr>{{end}}
  {{if .Interests}}<tr><td><b>Intereses</b></td><td>{{join .Interests}}</td></tr>{{end}}
  {{if .FinancialGoal}}<tr><td><b>Objetivo financiero</b></td><td>{{.FinancialGoal}}</td></tr>{{end}}
</table>
<p>Registrado el {{.When}}</p>
`))

// mailRequest is the v3 mail-send payload
type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Notifier implements domain.LeadNotifier over the SendGrid API.
// A Notifier without an API key is disabled and sends nothing.
type Notifier struct {
	http    *client.Client
	cfg     config.SendGridConfig
	baseURL string
	logger  *slog.Logger
}

// NewNotifier creates a lead notifier. It never fails on a missing API
// key; the caller checks Enabled before deciding to wire it in.
func NewNotifier(cfg config.SendGridConfig, logger *slog.Logger) (*Notifier, error) {
	httpClient, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	return &Notifier{http: httpClient, cfg: cfg, baseURL: mailSendURL, logger: logger}, nil
}

// Enabled reports whether an API key is configured
func (n *Notifier) Enabled() bool {
	return n.cfg.APIKey != ""
}

// NotifyLead renders and sends the new-lead email
func (n *Notifier) NotifyLead(ctx context.Context, lead *entity.Lead) error {
	if !n.Enabled() {
		return nil
	}

	html, err := renderLeadEmail(lead)
	if err != nil {
		return fmt.Errorf("failed to render lead email: %w", err)
	}

	payload := mailRequest{
		Personalizations: []personalization{{
			To: []address{{Email: n.cfg.ToEmail, Name: n.cfg.ToName}},
		}},
		From:    address{Email: n.cfg.FromEmail, Name: n.cfg.FromName},
		Subject: fmt.Sprintf("Nuevo lead: %s", lead.Name),
		Content: []content{{Type: "text/html", Value: html}},
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod("POST")
	req.SetRequestURI(n.baseURL)
	req.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(body)

	if err := n.http.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return domain.NewUnavailableError("sendgrid")
	}

	n.logger.Info("lead notification sent", "lead_email", lead.Email, "status", status)
	return nil
}

// renderLeadEmail produces the HTML body for one lead
func renderLeadEmail(lead *entity.Lead) (string, error) {
	data := struct {
		*entity.Lead
		When string
	}{
		Lead: lead,
		When: lead.CreatedAt.Format("2006-01-02 15:04"),
	}

	var buf bytes.Buffer
	if err := leadEmailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
