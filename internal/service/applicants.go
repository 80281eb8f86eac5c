package service

import (
	"context"
	"errors"
	"sync"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/client"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/session"
	"plantstore-admin/internal/toast"
)

// ApplicantList manages one onboarding collection: retailers, suppliers or
// the recent-deals applications. Retailers and suppliers are filtered by a
// single-select status tab; applications render unfiltered.
type ApplicantList struct {
	mu          sync.Mutex
	storeClient client.StoreClient
	session     session.Store
	toasts      *toast.Notifier
	kind        client.ApplicantKind

	applicants []model.Application
	loading    bool
	activeTab  string
}

func NewApplicantList(storeClient client.StoreClient, sess session.Store, toasts *toast.Notifier, kind client.ApplicantKind) *ApplicantList {
	activeTab := model.ApplicationAccepted
	if kind == client.KindApplication {
		activeTab = ""
	}
	return &ApplicantList{
		storeClient: storeClient,
		session:     sess,
		toasts:      toasts,
		kind:        kind,
		activeTab:   activeTab,
	}
}

func (l *ApplicantList) Kind() client.ApplicantKind { return l.kind }

func (l *ApplicantList) Load(ctx context.Context) error {
	l.setLoading(true)
	defer l.setLoading(false)

	applicants, err := l.storeClient.ListApplicants(ctx, l.session.Token(), l.kind)
	if err != nil {
		l.fail(ctx, err, "Failed to load "+string(l.kind)+" list")
		return err
	}

	l.mu.Lock()
	l.applicants = applicants
	l.mu.Unlock()
	return nil
}

// SetActiveTab switches the single-select status filter. An empty tab shows
// everything.
func (l *ApplicantList) SetActiveTab(tab string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.activeTab = tab
}

func (l *ApplicantList) ActiveTab() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.activeTab
}

// Visible derives the tab-filtered view; exact status match, no network.
func (l *ApplicantList) Visible() []model.Application {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.activeTab == "" {
		out := make([]model.Application, len(l.applicants))
		copy(out, l.applicants)
		return out
	}

	out := make([]model.Application, 0, len(l.applicants))
	for _, a := range l.applicants {
		if a.ApplicationStatus == l.activeTab {
			out = append(out, a)
		}
	}
	return out
}

func (l *ApplicantList) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.applicants)
}

// UpdateStatus moves one application through accepted/pending/rejected and
// reloads the collection.
func (l *ApplicantList) UpdateStatus(ctx context.Context, id, status string) error {
	err := l.storeClient.UpdateApplicationStatus(ctx, l.session.Token(), l.kind, id, status)
	if err != nil {
		l.fail(ctx, err, "Failed to update application status")
		return err
	}

	l.toasts.Add("Application status updated", toast.Success, 0)
	return l.Load(ctx)
}

func (l *ApplicantList) Delete(ctx context.Context, id string) error {
	err := l.storeClient.DeleteApplicant(ctx, l.session.Token(), l.kind, id)
	if err != nil {
		l.fail(ctx, err, "Failed to delete "+string(l.kind))
		return err
	}

	l.toasts.Add("Deleted successfully", toast.Success, 0)
	return l.Load(ctx)
}

func (l *ApplicantList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *ApplicantList) Empty() EmptyState {
	l.mu.Lock()
	defer l.mu.Unlock()

	hint := "Applications will appear here once submitted"
	if l.activeTab != "" {
		hint = "Try another tab to see more results"
	}
	return EmptyState{Title: "No applications available", Hint: hint}
}

func (l *ApplicantList) setLoading(v bool) {
	l.mu.Lock()
	l.loading = v
	l.mu.Unlock()
}

func (l *ApplicantList) fail(ctx context.Context, err error, fallback string) {
	if errors.Is(err, apierr.ErrUnauthorized) {
		_ = l.session.Logout(ctx)
		return
	}
	l.toasts.Add(apierr.UserMessage(err, fallback), toast.Error, 0)
}
