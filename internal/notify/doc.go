// Package notify emails site staff about accepted submissions.
//
// Messages are rendered from Liquid templates and delivered through a
// Mailer; SESMailer is the production Mailer backed by AWS SES v2.
package notify
