package notify

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/osteele/liquid"

	"github.com/samarpantrust/outreach/internal/domain"
	"github.com/samarpantrust/outreach/internal/service/submission"
)

type messageTemplate struct {
	subject string
	text    string
	html    string
}

var messageTemplates = map[domain.Kind]messageTemplate{
	domain.KindVolunteerInterest: {
		subject: `[{{ site_name }}] New volunteer: {{ name }}`,
		text: `{{ name }} <{{ email }}> wants to volunteer.

Area of interest: {{ area_of_interest | area_label }}
Availability: {{ availability | availability_label }}
{% if message != "" %}
{{ message }}
{% endif %}
Reference: {{ ref }} ({{ submitted_at }})
`,
		html: `<h2>New volunteer interest</h2>
<p><strong>{{ name | escape }}</strong> &lt;{{ email | escape }}&gt;</p>
<ul>
<li>Area of interest: {{ area_of_interest | area_label | escape }}</li>
<li>Availability: {{ availability | availability_label | escape }}</li>
</ul>
{% if message != "" %}<p>{{ message | escape | newline_to_br }}</p>{% endif %}
<p><small>Reference {{ ref }} &middot; {{ submitted_at }}</small></p>
`,
	},
	domain.KindContactMessage: {
		subject: `[{{ site_name }}] {{ subject | default: "New contact message" }}`,
		text: `{{ name }} <{{ email }}> wrote:

{{ message }}

Reference: {{ ref }} ({{ submitted_at }})
`,
		html: `<h2>{{ subject | default: "New contact message" | escape }}</h2>
<p>From <strong>{{ name | escape }}</strong> &lt;{{ email | escape }}&gt;</p>
<p>{{ message | escape | newline_to_br }}</p>
<p><small>Reference {{ ref }} &middot; {{ submitted_at }}</small></p>
`,
	},
	domain.KindDonationPledge: {
		subject: `[{{ site_name }}] Donation pledge of {{ amount | thousands }} from {{ name }}`,
		text: `{{ name }} <{{ email }}> pledged {{ amount | thousands }}.
{% if message != "" %}
{{ message }}
{% endif %}
Reference: {{ ref }} ({{ submitted_at }})
`,
		html: `<h2>New donation pledge</h2>
<p><strong>{{ name | escape }}</strong> &lt;{{ email | escape }}&gt; pledged <strong>{{ amount | thousands }}</strong>.</p>
{% if message != "" %}<p>{{ message | escape | newline_to_br }}</p>{% endif %}
<p><small>Reference {{ ref }} &middot; {{ submitted_at }}</small></p>
`,
	},
}

type parsedTemplate struct {
	subject *liquid.Template
	text    *liquid.Template
	html    *liquid.Template
}

// Renderer turns a submission.Notification into an Email body.
type Renderer struct {
	siteName  string
	templates map[domain.Kind]parsedTemplate
}

// NewRenderer parses the notification templates.
func NewRenderer(siteName string) (*Renderer, error) {
	engine := liquid.NewEngine()
	registerFilters(engine)

	r := &Renderer{siteName: siteName, templates: make(map[domain.Kind]parsedTemplate, len(messageTemplates))}
	for kind, src := range messageTemplates {
		var p parsedTemplate
		var err error
		if p.subject, err = engine.ParseString(src.subject); err != nil {
			return nil, fmt.Errorf("parsing %s subject: %w", kind, err)
		}
		if p.text, err = engine.ParseString(src.text); err != nil {
			return nil, fmt.Errorf("parsing %s text: %w", kind, err)
		}
		if p.html, err = engine.ParseString(src.html); err != nil {
			return nil, fmt.Errorf("parsing %s html: %w", kind, err)
		}
		r.templates[kind] = p
	}
	return r, nil
}

func registerFilters(engine *liquid.Engine) {
	engine.RegisterFilter("area_label", func(v string) string {
		return domain.OptionLabel(domain.AreasOfInterest, v)
	})
	engine.RegisterFilter("availability_label", func(v string) string {
		return domain.OptionLabel(domain.Availabilities, v)
	})
	engine.RegisterFilter("escape", func(v string) string {
		return html.EscapeString(v)
	})
	engine.RegisterFilter("newline_to_br", func(v string) string {
		return strings.ReplaceAll(v, "\n", "<br />\n")
	})
	// {{ 1234567 | thousands }} => 1,234,567
	engine.RegisterFilter("thousands", func(v uint64) string {
		return groupThousands(v)
	})
}

func groupThousands(v uint64) string {
	s := strconv.FormatUint(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Render produces subject, text and HTML bodies for n.
func (r *Renderer) Render(n submission.Notification) (subject, text, htmlBody string, err error) {
	tpl, ok := r.templates[n.Kind]
	if !ok {
		return "", "", "", fmt.Errorf("no template for %q", n.Kind)
	}
	b := r.bindings(n)

	if subject, err = tpl.subject.RenderString(b); err != nil {
		return "", "", "", fmt.Errorf("rendering subject: %w", err)
	}
	if text, err = tpl.text.RenderString(b); err != nil {
		return "", "", "", fmt.Errorf("rendering text: %w", err)
	}
	if htmlBody, err = tpl.html.RenderString(b); err != nil {
		return "", "", "", fmt.Errorf("rendering html: %w", err)
	}
	return strings.TrimSpace(subject), text, htmlBody, nil
}

func (r *Renderer) bindings(n submission.Notification) map[string]any {
	b := map[string]any{
		"site_name":    r.siteName,
		"ref":          n.Reference,
		"kind":         string(n.Kind),
		"submitted_at": n.SubmittedAt.Format("2006-01-02 15:04 MST"),
		"message":      "",
	}
	switch {
	case n.Volunteer != nil:
		b["name"] = n.Volunteer.Name
		b["email"] = n.Volunteer.Email
		b["area_of_interest"] = n.Volunteer.AreaOfInterest
		b["availability"] = n.Volunteer.Availability
		b["message"] = n.Volunteer.Message
	case n.Contact != nil:
		b["name"] = n.Contact.Name
		b["email"] = n.Contact.Email
		b["subject"] = n.Contact.Subject
		b["message"] = n.Contact.Message
	case n.Pledge != nil:
		b["name"] = n.Pledge.Name
		b["email"] = n.Pledge.Email
		b["amount"] = n.Pledge.Amount
		b["message"] = n.Pledge.MessageText()
	}
	return b
}
