// Package funding aggregates processor payments into per-wish funding
// totals. Aggregation is a pure function over the two input collections;
// callers' slices are never mutated.
package funding

import (
	"github.com/shopspring/decimal"

	"github.com/wishwell/wishwell-api/internal/domain"
)

// Contributor is one contribution as shown on a wish card.
type Contributor struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// WishFunding is a wish with its cumulative paid amount and the list of
// contributions behind it, in the order the payments arrived.
type WishFunding struct {
	Wish         domain.Wish     `json:"wish"`
	Paid         decimal.Decimal `json:"paid"`
	Contributors []Contributor   `json:"contributors"`
}

// Result is the event-level aggregation. Orphaned holds payments whose wish
// reference no longer resolves (e.g. the wish was deleted after payment);
// they are surfaced for manual reconciliation rather than silently dropped.
type Result struct {
	Wishes   []WishFunding         `json:"wishes"`
	Orphaned []domain.Contribution `json:"orphaned,omitempty"`
}

// Aggregate computes each wish's paid total and contributor list from the
// given payments. Payments are processed in input order, so contributor
// lists follow the order received from the processor, while totals are
// order-independent.
func Aggregate(payments []domain.Contribution, wishes []domain.Wish) Result {
	byWish := make(map[uint]int, len(wishes))
	out := Result{Wishes: make([]WishFunding, len(wishes))}
	for i, w := range wishes {
		byWish[w.ID] = i
		out.Wishes[i] = WishFunding{Wish: w, Paid: decimal.Zero}
	}

	for _, p := range payments {
		i, ok := byWish[p.WishID]
		if !ok {
			out.Orphaned = append(out.Orphaned, p)
			continue
		}

		out.Wishes[i].Paid = out.Wishes[i].Paid.Add(p.Amount)
		out.Wishes[i].Contributors = append(out.Wishes[i].Contributors, Contributor{
			Name:   p.SenderName,
			Amount: p.Amount,
		})
	}

	return out
}
