package service

import (
	"context"
	"errors"
	"sync"

	"plantstore-admin/internal/apierr"
	"plantstore-admin/internal/client"
	"plantstore-admin/internal/form"
	"plantstore-admin/internal/model"
	"plantstore-admin/internal/session"
	"plantstore-admin/internal/toast"
)

// BannerBoard holds the current banner per type and implements the
// upsert-by-type save: the backend keeps at most one banner per type, so a
// save updates the existing record's id when one is known and creates
// otherwise.
type BannerBoard struct {
	mu          sync.Mutex
	storeClient client.StoreClient
	session     session.Store
	toasts      *toast.Notifier

	banners   map[string]*model.Banner
	loading   bool
	uploading map[string]bool
}

func NewBannerBoard(storeClient client.StoreClient, sess session.Store, toasts *toast.Notifier) *BannerBoard {
	return &BannerBoard{
		storeClient: storeClient,
		session:     sess,
		toasts:      toasts,
		banners: map[string]*model.Banner{
			model.BannerMain:  nil,
			model.BannerOffer: nil,
		},
		uploading: make(map[string]bool),
	}
}

func (b *BannerBoard) Load(ctx context.Context) error {
	b.setLoading(true)
	defer b.setLoading(false)

	banners, err := b.storeClient.ListBanners(ctx, b.session.Token())
	if err != nil {
		b.fail(ctx, err, "Failed to load banners")
		return err
	}

	byType := map[string]*model.Banner{
		model.BannerMain:  nil,
		model.BannerOffer: nil,
	}
	for i := range banners {
		banner := banners[i]
		if banner.Type == model.BannerMain || banner.Type == model.BannerOffer {
			byType[banner.Type] = &banner
		}
	}

	b.mu.Lock()
	b.banners = byType
	b.mu.Unlock()
	return nil
}

// Banner returns the current record for a type, or nil when none exists yet.
func (b *BannerBoard) Banner(bannerType string) *model.Banner {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.banners[bannerType]
}

// Save validates then upserts the banner behind the form. The upsert target
// comes from the board's own map, not the form, so a form seeded before a
// concurrent create still updates rather than duplicating.
func (b *BannerBoard) Save(ctx context.Context, f *form.BannerForm) (form.Errors, error) {
	if errs := f.Validate(); !errs.Valid() {
		for _, msg := range errs {
			b.toasts.Add(msg, toast.Error, 0)
		}
		return errs, nil
	}

	body, contentType, err := f.Payload()
	if err != nil {
		return nil, err
	}

	b.setUploading(f.Type(), true)
	defer b.setUploading(f.Type(), false)

	existing := b.Banner(f.Type())
	token := b.session.Token()
	if existing != nil {
		err = b.storeClient.UpdateBanner(ctx, token, existing.ID, body, contentType)
	} else {
		err = b.storeClient.CreateBanner(ctx, token, body, contentType)
	}
	if err != nil {
		b.fail(ctx, err, "Failed to save banner")
		return nil, err
	}

	if existing != nil {
		b.toasts.Add("Banner updated successfully", toast.Success, 0)
	} else {
		b.toasts.Add("Banner created successfully", toast.Success, 0)
	}
	return nil, b.Load(ctx)
}

func (b *BannerBoard) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *BannerBoard) Uploading(bannerType string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.uploading[bannerType]
}

func (b *BannerBoard) setLoading(v bool) {
	b.mu.Lock()
	b.loading = v
	b.mu.Unlock()
}

func (b *BannerBoard) setUploading(bannerType string, v bool) {
	b.mu.Lock()
	b.uploading[bannerType] = v
	b.mu.Unlock()
}

func (b *BannerBoard) fail(ctx context.Context, err error, fallback string) {
	if errors.Is(err, apierr.ErrUnauthorized) {
		_ = b.session.Logout(ctx)
		return
	}
	b.toasts.Add(apierr.UserMessage(err, fallback), toast.Error, 0)
}
