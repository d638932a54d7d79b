// Package repository layers typed collections on top of the key-value
// store. Every collection is one JSON array under one key, rewritten as
// a whole on mutation.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"travelease/infras/kvstore"
	"travelease/infras/otel"
	"travelease/shared/constant"
	"travelease/shared/logger"
)

// KeyPrefix namespaces every store key owned by this service.
const KeyPrefix = "travelease"

// CollectionKey returns the store key holding a named collection.
func CollectionKey(name string) string {
	return KeyPrefix + ":" + name
}

func sequenceKey(name string) string {
	return KeyPrefix + ":seq:" + name
}

// Collection is a typed view over one serialized JSON array.
type Collection[T any] struct {
	store  kvstore.Store
	otel   otel.Otel
	entity string
	key    string
	seqKey string
}

func NewCollection[T any](entity string, store kvstore.Store, otl otel.Otel) Collection[T] {
	return Collection[T]{
		store:  store,
		otel:   otl,
		entity: entity,
		key:    CollectionKey(entity),
		seqKey: sequenceKey(entity),
	}
}

// GetAll decodes the whole collection. A key that was never written
// decodes as an empty collection.
func (c *Collection[T]) GetAll(ctx context.Context) (items []T, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, c.key)

	value, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to read collection (%s): %w", c.entity, err)
	}

	if !ok {
		return []T{}, nil
	}

	if err = json.Unmarshal(value, &items); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to decode collection (%s): %w", c.entity, err)
	}

	return items, nil
}

// ReplaceAll serializes items and overwrites the collection in one write.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ReplaceAll", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, c.key)

	if items == nil {
		items = []T{}
	}

	value, err := json.Marshal(items)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to encode collection (%s): %w", c.entity, err)
	}

	if err = c.store.Set(ctx, c.key, value); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to write collection (%s): %w", c.entity, err)
	}

	return nil
}

// Append reads the collection, appends item and writes it back.
func (c *Collection[T]) Append(ctx context.Context, item T) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Append", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	items, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	return c.ReplaceAll(ctx, append(items, item))
}

// NextID advances the persisted sequence counter for this collection.
// Issued identifiers are never reused, even after deletions.
func (c *Collection[T]) NextID(ctx context.Context) (id int, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.NextID", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, c.seqKey)

	current := 0

	value, ok, err := c.store.Get(ctx, c.seqKey)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read sequence (%s): %w", c.entity, err)
	}

	if ok {
		current, err = strconv.Atoi(string(value))
		if err != nil {
			logger.ErrorWithStack(err)

			return 0, fmt.Errorf("failed to decode sequence (%s): %w", c.entity, err)
		}
	}

	id = current + 1

	if err = c.store.Set(ctx, c.seqKey, []byte(strconv.Itoa(id))); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to write sequence (%s): %w", c.entity, err)
	}

	return id, nil
}

// Singleton is a typed view over one JSON object under one key, used
// for state that exists at most once, such as the active session.
type Singleton[T any] struct {
	store  kvstore.Store
	otel   otel.Otel
	entity string
	key    string
}

func NewSingleton[T any](entity string, store kvstore.Store, otl otel.Otel) Singleton[T] {
	return Singleton[T]{
		store:  store,
		otel:   otl,
		entity: entity,
		key:    CollectionKey(entity),
	}
}

// Get decodes the value. ok reports whether it is currently set.
func (s *Singleton[T]) Get(ctx context.Context) (item T, ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, s.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, s.key)

	value, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		logger.ErrorWithStack(err)

		return item, false, fmt.Errorf("failed to read %s: %w", s.entity, err)
	}

	if !ok {
		return item, false, nil
	}

	if err = json.Unmarshal(value, &item); err != nil {
		logger.ErrorWithStack(err)

		return item, false, fmt.Errorf("failed to decode %s: %w", s.entity, err)
	}

	return item, true, nil
}

// Put overwrites the value.
func (s *Singleton[T]) Put(ctx context.Context, item T) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Put", constant.OtelRepositoryScopeName, s.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, s.key)

	value, err := json.Marshal(item)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to encode %s: %w", s.entity, err)
	}

	if err = s.store.Set(ctx, s.key, value); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to write %s: %w", s.entity, err)
	}

	return nil
}

// Clear removes the value. Clearing an unset value is a no-op.
func (s *Singleton[T]) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Clear", constant.OtelRepositoryScopeName, s.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, s.key)

	if err = s.store.Delete(ctx, s.key); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to clear %s: %w", s.entity, err)
	}

	return nil
}
