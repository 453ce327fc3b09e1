// Package signup orchestrates the side effects of one FNG form submission:
// mailing-list enrollment, Slack invite email, and the welcome-team
// notification. The three operations are independently fallible; no failure
// aborts the others.
package signup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/f3stcharles/f3utils/internal/mailchimp"
)

// Submission holds the four required field values recovered from the modal.
type Submission struct {
	F3Name       string
	HospitalName string
	Email        string
	CellPhone    string
}

// ListSubscriber enrolls a contact on the mailing list.
type ListSubscriber interface {
	Subscribe(ctx context.Context, m mailchimp.Member) error
}

// InviteSender emails a contact the workspace invite.
type InviteSender interface {
	SendInvite(f3Name, hospitalName, email string) error
}

// TeamNotifier posts a message to a channel.
type TeamNotifier interface {
	PostMessage(ctx context.Context, channel, text string) error
}

// Service runs the submission side effects and aggregates their outcomes.
type Service struct {
	list     ListSubscriber
	invites  InviteSender
	notifier TeamNotifier
	channel  string
	logger   *slog.Logger
}

// New creates a Service posting notifications to the given channel.
func New(list ListSubscriber, invites InviteSender, notifier TeamNotifier, channel string, logger *slog.Logger) *Service {
	return &Service{
		list:     list,
		invites:  invites,
		notifier: notifier,
		channel:  channel,
		logger:   logger,
	}
}

// Process runs the three operations and returns their outcomes. Enrollment
// and the invite are mutually independent and run concurrently; the welcome
// notification must observe both outcomes, so it runs after the join.
// Process always returns a complete Report, even if all it reports is
// failures.
func (s *Service) Process(ctx context.Context, sub Submission) Report {
	logger := s.logger.With(slog.String("submission_id", uuid.NewString()))
	logger.Info("processing signup submission", "f3_name", sub.F3Name)

	var report Report
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		err := s.list.Subscribe(ctx, mailchimp.Member{
			EmailAddress: sub.Email,
			FullName:     sub.HospitalName,
			Phone:        sub.CellPhone,
			F3Name:       sub.F3Name,
		})
		if err != nil {
			logger.Warn("mailing-list enrollment failed", "error", err)
			report.Enrollment = OutcomeFailure
			return
		}
		report.Enrollment = OutcomeSuccess
	}()

	go func() {
		defer wg.Done()
		if err := s.invites.SendInvite(sub.F3Name, sub.HospitalName, sub.Email); err != nil {
			logger.Warn("invite dispatch failed", "error", err)
			report.Invitation = OutcomeFailure
			return
		}
		report.Invitation = OutcomeSuccess
	}()

	wg.Wait()

	if err := s.notifier.PostMessage(ctx, s.channel, welcomeMessage(sub, report)); err != nil {
		logger.Warn("welcome notification failed", "error", err)
		report.Notification = OutcomeFailure
	} else {
		report.Notification = OutcomeSuccess
	}

	logger.Info("submission processed",
		"enrollment", report.Enrollment,
		"invitation", report.Invitation,
		"notification", report.Notification,
	)
	return report
}

// welcomeMessage summarizes the contact's fields and the outcomes of the
// first two operations for the welcome team.
func welcomeMessage(sub Submission, r Report) string {
	return fmt.Sprintf(`Hi welcome team! A new FNG just posted.  Their contact info is:
F3 Name: %s
Hospital Name: %s
Email Address: %s
Cell Phone: %s

Here are the results of inviting them to slack and adding them to Mailchimp:
%s
%s`, sub.F3Name, sub.HospitalName, sub.Email, sub.CellPhone, invitationLine(r.Invitation), enrollmentLine(r.Enrollment))
}
