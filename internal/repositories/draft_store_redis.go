package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"

	"github.com/go-redis/redis/v8"
)

const (
	draftKeyPrefix   = "tripbooking:draft:"
	draftUpdateTries = 5
)

// RedisDraftStore shares drafts between instances. Updates run as WATCH/MULTI
// transactions and are retried when another writer got there first.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s RedisDraftStore) key(id string) string { return draftKeyPrefix + id }

func (s RedisDraftStore) Create(ctx context.Context, draft models.BookingDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	ok, err := s.Client.SetNX(ctx, s.key(draft.ID), raw, s.TTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ConflictError{Resource: "draft", Msg: "id sudah dipakai"}
	}
	return nil
}

func (s RedisDraftStore) Get(ctx context.Context, id string) (models.BookingDraft, error) {
	raw, err := s.Client.Get(ctx, s.key(id)).Bytes()
	return decodeDraft(raw, err)
}

func (s RedisDraftStore) Update(ctx context.Context, id string, fn func(*models.BookingDraft) error) (models.BookingDraft, error) {
	key := s.key(id)
	var out models.BookingDraft

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		draft, err := decodeDraft(raw, err)
		if err != nil {
			return err
		}
		if err := fn(&draft); err != nil {
			return err
		}
		next, err := json.Marshal(draft)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, s.TTL)
			return nil
		})
		if err == nil {
			out = draft
		}
		return err
	}

	for i := 0; i < draftUpdateTries; i++ {
		err := s.Client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return models.BookingDraft{}, err
		}
		return out, nil
	}
	return models.BookingDraft{}, domain.ConflictError{Resource: "draft", Msg: "draft sedang diubah, coba lagi"}
}

func (s RedisDraftStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.key(id)).Err()
}

func decodeDraft(raw []byte, err error) (models.BookingDraft, error) {
	if errors.Is(err, redis.Nil) {
		return models.BookingDraft{}, domain.NotFoundError{Resource: "draft"}
	}
	if err != nil {
		return models.BookingDraft{}, err
	}
	var d models.BookingDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return models.BookingDraft{}, domain.InternalError{Msg: "draft rusak", Err: err}
	}
	return d, nil
}
