// Package dashboard aggregates the platform totals shown on the admin home
// page.
package dashboard

import (
	"context"
	"fmt"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"golang.org/x/sync/errgroup"
)

// Source lists the collections the dashboard summarizes.
type Source interface {
	ListUsers(ctx context.Context) ([]consultapi.User, error)
	ListExperts(ctx context.Context) ([]consultapi.Expert, error)
	ListReviews(ctx context.Context) ([]consultapi.Review, error)
	ListWallets(ctx context.Context) ([]consultapi.Wallet, error)
}

// Bucket is one labelled bar of a chart.
type Bucket struct {
	Label string
	Count int
}

// Summary is the joined dashboard snapshot.
type Summary struct {
	Users   int
	Experts int
	Reviews int
	Wallets int

	// Ratings holds one bucket per star, 1 through 5.
	Ratings []Bucket
	// Offers bins wallet plans by offer percentage.
	Offers []Bucket
	// UserGrowth and ExpertGrowth are synthetic series derived from the
	// current totals, not historical data.
	UserGrowth   []Bucket
	ExpertGrowth []Bucket
}

// MaxCount returns the largest count in buckets, for bar scaling.
func MaxCount(buckets []Bucket) int {
	largest := 0
	for _, bucket := range buckets {
		largest = max(largest, bucket.Count)
	}
	return largest
}

// Load fetches the four collections concurrently and joins them. Any failed
// fetch fails the whole summary.
func Load(ctx context.Context, source Source) (Summary, error) {
	if source == nil {
		return Summary{}, fmt.Errorf("dashboard source is not configured")
	}
	var (
		users   []consultapi.User
		experts []consultapi.Expert
		reviews []consultapi.Review
		wallets []consultapi.Wallet
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		users, err = source.ListUsers(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		experts, err = source.ListExperts(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		reviews, err = source.ListReviews(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		wallets, err = source.ListWallets(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return Summary{}, fmt.Errorf("load dashboard: %w", err)
	}
	return Summarize(users, experts, reviews, wallets), nil
}

// Summarize computes counts and chart series from fetched collections.
func Summarize(users []consultapi.User, experts []consultapi.Expert, reviews []consultapi.Review, wallets []consultapi.Wallet) Summary {
	return Summary{
		Users:        len(users),
		Experts:      len(experts),
		Reviews:      len(reviews),
		Wallets:      len(wallets),
		Ratings:      RatingHistogram(reviews),
		Offers:       OfferBins(wallets),
		UserGrowth:   Growth(len(users)),
		ExpertGrowth: Growth(len(experts)),
	}
}

// RatingHistogram counts reviews per star. Ratings outside 1-5 or with a
// fractional part are ignored.
func RatingHistogram(reviews []consultapi.Review) []Bucket {
	buckets := make([]Bucket, 5)
	for i := range buckets {
		buckets[i].Label = fmt.Sprintf("%d", i+1)
	}
	for _, review := range reviews {
		rating := review.Rating.Float()
		star := int(rating)
		if float64(star) != rating || star < 1 || star > 5 {
			continue
		}
		buckets[star-1].Count++
	}
	return buckets
}

type offerRange struct {
	label    string
	low, top int
}

var offerRanges = []offerRange{
	{label: "0-10", low: 0, top: 10},
	{label: "11-20", low: 11, top: 20},
	{label: "21-30", low: 21, top: 30},
	{label: "31-100", low: 31, top: 100},
}

// OfferBins groups wallet plans by the integer part of their offer.
func OfferBins(wallets []consultapi.Wallet) []Bucket {
	buckets := make([]Bucket, len(offerRanges))
	for i, r := range offerRanges {
		buckets[i].Label = r.label
	}
	for _, wallet := range wallets {
		offer := wallet.Offer.Int()
		for i, r := range offerRanges {
			if offer >= r.low && offer <= r.top {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

var growthMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// Growth spreads total linearly over six months, ending at total.
func Growth(total int) []Bucket {
	buckets := make([]Bucket, len(growthMonths))
	for i, month := range growthMonths {
		buckets[i] = Bucket{Label: month, Count: total * (i + 1) / len(growthMonths)}
	}
	return buckets
}
