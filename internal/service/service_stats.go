// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/store"
	"github.com/MKhiriev/go-sample-api/models"
)

type statsService struct {
	itemRepository store.ItemRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewStatsService(itemRepository store.ItemRepository, userRepository store.UserRepository, logger *logger.Logger) StatsService {
	return &statsService{
		itemRepository: itemRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// Compute scans both stores and derives the aggregate. It is a pure read:
// nothing is cached and nothing is mutated, so every call reflects the
// current store contents.
//
// TotalInventoryValue sums price*quantity over all items and rounds the sum
// to two decimal places with round-half-to-even (banker's rounding): a value
// exactly halfway between two representable results goes to the even
// neighbour, e.g. 2.675 -> 2.68 would be half-away-from-zero, here 2.125 ->
// 2.12.
func (s *statsService) Compute(ctx context.Context) (models.Stats, error) {
	items, err := s.itemRepository.All(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	users, err := s.userRepository.All(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	var totalValue float64
	for _, item := range items {
		totalValue += item.Price * float64(item.Quantity)
	}

	var activeUsers int64
	for _, user := range users {
		if user.IsActive {
			activeUsers++
		}
	}

	return models.Stats{
		TotalItems:          int64(len(items)),
		TotalUsers:          int64(len(users)),
		TotalInventoryValue: roundHalfToEven(totalValue, 2),
		ActiveUsers:         activeUsers,
	}, nil
}

// roundHalfToEven rounds v to the given number of decimal places using
// banker's rounding.
func roundHalfToEven(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.RoundToEven(v*factor) / factor
}
