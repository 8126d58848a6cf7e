package admin

import (
	"context"
	"net/http"

	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

func reviewSearchFields(review consultapi.Review) []string {
	return []string{review.ID, review.Comment, review.Expert.Name, review.User.Name, review.Rating.String()}
}

func (h *Handler) reviewsList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.Review] {
	return loadList(h, r, loc, q, listSource[consultapi.Review]{
		op:     "list reviews",
		fetch:  h.client.ListReviews,
		fields: reviewSearchFields,
		idOf: func(review consultapi.Review) string {
			return review.ID
		},
		size: listview.DefaultPageSize,
	})
}

func reviewsView(list loadedList[consultapi.Review]) templates.ReviewsView {
	return templates.ReviewsView{
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

func (h *Handler) handleReviewsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.reviewsList(r, loc, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderReviewsPage(w, r, loc, lang, reviewsView(list), http.StatusOK)
}

func (h *Handler) handleReviewsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.reviewsList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.ReviewsTable(h.pageContext(lang, loc, r), reviewsView(list)))
}

func (h *Handler) handleReviewDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalDeleting, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Reviews)) {
		return
	}
	if !requireConfirmed(w, r, loc, forms.Confirmed(r.PostForm)) {
		return
	}
	err := h.mutate(r, "delete review", func(ctx context.Context) error {
		return h.client.DeleteReview(ctx, id)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(routepath.Reviews))
		return
	}
	if h.redirectUnauthorized(w, r, err) {
		return
	}
	list := h.reviewsList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := reviewsView(list)
	view.Modal.FormError = apiErrorMessage(loc, err)
	h.renderReviewsPage(w, r, loc, lang, view, upstreamFailureStatus)
}

func (h *Handler) renderReviewsPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.ReviewsView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "reviews.title", templates.ReviewsPage(page, view), status)
}
