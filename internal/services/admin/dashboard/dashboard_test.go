package dashboard

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

type fakeSource struct {
	users   []consultapi.User
	experts []consultapi.Expert
	reviews []consultapi.Review
	wallets []consultapi.Wallet
	failOn  string
	calls   atomic.Int32
}

func (f *fakeSource) fail(name string) error {
	f.calls.Add(1)
	if f.failOn == name {
		return errors.New(name + " unavailable")
	}
	return nil
}

func (f *fakeSource) ListUsers(context.Context) ([]consultapi.User, error) {
	return f.users, f.fail("users")
}

func (f *fakeSource) ListExperts(context.Context) ([]consultapi.Expert, error) {
	return f.experts, f.fail("experts")
}

func (f *fakeSource) ListReviews(context.Context) ([]consultapi.Review, error) {
	return f.reviews, f.fail("reviews")
}

func (f *fakeSource) ListWallets(context.Context) ([]consultapi.Wallet, error) {
	return f.wallets, f.fail("wallets")
}

func counts(buckets []Bucket) []int {
	out := make([]int, len(buckets))
	for i, bucket := range buckets {
		out[i] = bucket.Count
	}
	return out
}

func TestLoadJoinsAllSources(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		users:   make([]consultapi.User, 12),
		experts: make([]consultapi.Expert, 3),
		reviews: []consultapi.Review{{Rating: 5}, {Rating: 4}, {Rating: 5}},
		wallets: []consultapi.Wallet{{Offer: 5}, {Offer: 50}},
	}
	summary, err := Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if summary.Users != 12 || summary.Experts != 3 || summary.Reviews != 3 || summary.Wallets != 2 {
		t.Fatalf("counts = %+v", summary)
	}
	if got := source.calls.Load(); got != 4 {
		t.Fatalf("calls = %d, want 4", got)
	}
}

func TestLoadFailsWhenAnySourceFails(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"users", "experts", "reviews", "wallets"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(context.Background(), &fakeSource{failOn: name})
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestRatingHistogramIgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	reviews := []consultapi.Review{{Rating: 1}, {Rating: 3}, {Rating: 3}, {Rating: 5}, {Rating: 0}, {Rating: 6}, {Rating: 4.5}}
	got := RatingHistogram(reviews)
	if want := []int{1, 0, 2, 0, 1}; !reflect.DeepEqual(counts(got), want) {
		t.Fatalf("histogram = %v, want %v", counts(got), want)
	}
	if got[0].Label != "1" || got[4].Label != "5" {
		t.Fatalf("labels = %v", got)
	}
}

func TestOfferBins(t *testing.T) {
	t.Parallel()

	wallets := []consultapi.Wallet{{Offer: 0}, {Offer: 10.9}, {Offer: 11}, {Offer: 20}, {Offer: 25}, {Offer: 31}, {Offer: 100}, {Offer: 150}}
	got := OfferBins(wallets)
	if want := []int{2, 2, 1, 2}; !reflect.DeepEqual(counts(got), want) {
		t.Fatalf("bins = %v, want %v", counts(got), want)
	}
}

func TestGrowthEndsAtTotal(t *testing.T) {
	t.Parallel()

	got := Growth(12)
	if want := []int{2, 4, 6, 8, 10, 12}; !reflect.DeepEqual(counts(got), want) {
		t.Fatalf("growth = %v, want %v", counts(got), want)
	}
	if got[0].Label != "Jan" || got[5].Label != "Jun" {
		t.Fatalf("labels = %v", got)
	}
	if want := []int{0, 1, 2, 3, 4, 5}; !reflect.DeepEqual(counts(Growth(5)), want) {
		t.Fatalf("growth(5) = %v", counts(Growth(5)))
	}
}

func TestMaxCount(t *testing.T) {
	t.Parallel()

	if got := MaxCount([]Bucket{{Count: 2}, {Count: 7}, {Count: 1}}); got != 7 {
		t.Fatalf("MaxCount = %d", got)
	}
	if MaxCount(nil) != 0 {
		t.Fatal("MaxCount(nil) != 0")
	}
}
