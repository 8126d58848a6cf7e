package admin

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// Review page flash values carried across the post-redirect.
const (
	flashParam       = "flash"
	flashVerified    = consultapi.VerificationVerified
	flashRejected    = consultapi.VerificationRejected
	flashFailed      = "failed"
	expertsListTitle = "experts.title"
)

// expertsVariant is one of the all, verified and unverified expert lists.
type expertsVariant struct {
	base     string
	titleKey string
	fetch    func(h *Handler) func(context.Context) ([]consultapi.Expert, error)
}

var (
	allExperts = expertsVariant{
		base:     routepath.Experts,
		titleKey: expertsListTitle,
		fetch: func(h *Handler) func(context.Context) ([]consultapi.Expert, error) {
			return h.client.ListExperts
		},
	}
	verifiedExperts = expertsVariant{
		base:     routepath.ExpertsVerified,
		titleKey: "experts.verified_title",
		fetch: func(h *Handler) func(context.Context) ([]consultapi.Expert, error) {
			return h.client.ListVerifiedExperts
		},
	}
	unverifiedExperts = expertsVariant{
		base:     routepath.ExpertsUnverified,
		titleKey: "experts.unverified_title",
		fetch: func(h *Handler) func(context.Context) ([]consultapi.Expert, error) {
			return func(ctx context.Context) ([]consultapi.Expert, error) {
				experts, err := h.client.ListExperts(ctx)
				if err != nil {
					return nil, err
				}
				return unverifiedOnly(experts), nil
			}
		},
	}
)

// unverifiedOnly keeps experts whose verification is anything but verified.
func unverifiedOnly(experts []consultapi.Expert) []consultapi.Expert {
	out := make([]consultapi.Expert, 0, len(experts))
	for _, expert := range experts {
		if expert.VerificationStatus() != consultapi.VerificationVerified {
			out = append(out, expert)
		}
	}
	return out
}

// expertsVariantFor resolves the list a form was posted from.
func expertsVariantFor(base string) expertsVariant {
	switch routeBase(base, routepath.Experts, routepath.ExpertsVerified, routepath.ExpertsUnverified) {
	case routepath.ExpertsVerified:
		return verifiedExperts
	case routepath.ExpertsUnverified:
		return unverifiedExperts
	default:
		return allExperts
	}
}

func expertSearchFields(expert consultapi.Expert) []string {
	return []string{expert.Name, expert.Email}
}

func expertID(expert consultapi.Expert) string {
	return expert.ID
}

func (h *Handler) expertsList(r *http.Request, loc *message.Printer, variant expertsVariant, q listview.Query) loadedList[consultapi.Expert] {
	return loadList(h, r, loc, q, listSource[consultapi.Expert]{
		op:     "list experts",
		fetch:  variant.fetch(h),
		fields: expertSearchFields,
		idOf:   expertID,
		size:   listview.DefaultPageSize,
	})
}

func expertsView(variant expertsVariant, list loadedList[consultapi.Expert]) templates.ExpertsView {
	return templates.ExpertsView{
		BasePath: variant.base,
		TitleKey: variant.titleKey,
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

// handleExpertsPage renders one expert list variant with any open modal.
func (h *Handler) handleExpertsPage(w http.ResponseWriter, r *http.Request, variant expertsVariant) {
	loc, lang := h.localizer(w, r)
	list := h.expertsList(r, loc, variant, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := expertsView(variant, list)
	if list.Selected != nil && list.Modal.Is(listview.ModalEditing) {
		view.Edit = forms.ExpertEditFormFrom(*list.Selected)
	}
	h.renderExpertsPage(w, r, loc, lang, view, http.StatusOK)
}

func (h *Handler) handleExpertsTable(w http.ResponseWriter, r *http.Request, variant expertsVariant) {
	loc, lang := h.localizer(w, r)
	list := h.expertsList(r, loc, variant, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.ExpertsTable(h.pageContext(lang, loc, r), expertsView(variant, list)))
}

// handleExpertCreate creates an expert account from the create modal.
func (h *Handler) handleExpertCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalCreating, "")
	if !h.beginForm(w, r, loc, "", q.URL(routepath.Experts)) {
		return
	}
	variant := expertsVariantFor(r.PostForm.Get("return"))
	form := forms.ParseExpertCreateForm(r.PostForm)
	errs := form.Validate()
	status, formError := http.StatusUnprocessableEntity, ""
	if errs.OK() {
		err := h.mutate(r, "create expert", func(ctx context.Context) error {
			return h.client.CreateUser(ctx, form.Input())
		})
		if err == nil {
			sharedhtmx.Redirect(w, r, q.List().URL(variant.base))
			return
		}
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		status, formError = upstreamFailureStatus, apiErrorMessage(loc, err)
	}

	list := h.expertsList(r, loc, variant, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := expertsView(variant, list)
	view.Modal.FormError = formError
	// The password is never echoed back into the form.
	form.Password = ""
	view.Create = form
	view.Errors = errs
	h.renderExpertsPage(w, r, loc, lang, view, status)
}

// handleExpertUpdate saves the expert edit modal.
func (h *Handler) handleExpertUpdate(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalEditing, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Experts)) {
		return
	}
	variant := expertsVariantFor(r.PostForm.Get("return"))
	form := forms.ParseExpertEditForm(r.PostForm)
	errs := form.Validate()
	status, formError := http.StatusUnprocessableEntity, ""
	if errs.OK() {
		err := h.mutate(r, "update expert", func(ctx context.Context) error {
			return h.client.UpdateUser(ctx, id, form.Input())
		})
		if err == nil {
			sharedhtmx.Redirect(w, r, q.List().URL(variant.base))
			return
		}
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		status, formError = upstreamFailureStatus, apiErrorMessage(loc, err)
	}

	list := h.expertsList(r, loc, variant, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := expertsView(variant, list)
	view.Modal.FormError = formError
	view.Edit = form
	view.Errors = errs
	h.renderExpertsPage(w, r, loc, lang, view, status)
}

// handleExpertDelete deletes an expert after confirmation.
func (h *Handler) handleExpertDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalDeleting, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Experts)) {
		return
	}
	if !requireConfirmed(w, r, loc, forms.Confirmed(r.PostForm)) {
		return
	}
	variant := expertsVariantFor(r.PostForm.Get("return"))
	err := h.mutate(r, "delete expert", func(ctx context.Context) error {
		return h.client.DeleteExpert(ctx, id)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(variant.base))
		return
	}
	h.rerenderExpertsAfterFailure(w, r, loc, lang, variant, q, err)
}

// handleExpertBlock applies the block toggle posted from the view modal.
func (h *Handler) handleExpertBlock(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalViewing, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Experts)) {
		return
	}
	blocked, err := strconv.ParseBool(strings.TrimSpace(r.PostForm.Get("block")))
	if err != nil {
		http.Error(w, loc.Sprintf("error.form_invalid"), http.StatusBadRequest)
		return
	}
	variant := expertsVariantFor(r.PostForm.Get("return"))
	err = h.mutate(r, "block expert", func(ctx context.Context) error {
		return h.client.SetExpertBlocked(ctx, id, blocked)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(variant.base))
		return
	}
	h.rerenderExpertsAfterFailure(w, r, loc, lang, variant, q, err)
}

func (h *Handler) rerenderExpertsAfterFailure(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, variant expertsVariant, q listview.Query, err error) {
	if h.redirectUnauthorized(w, r, err) {
		return
	}
	list := h.expertsList(r, loc, variant, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := expertsView(variant, list)
	view.Modal.FormError = apiErrorMessage(loc, err)
	h.renderExpertsPage(w, r, loc, lang, view, upstreamFailureStatus)
}

func (h *Handler) renderExpertsPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.ExpertsView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, view.TitleKey, templates.ExpertsPage(page, view), status)
}

// handleExpertReview renders an expert's profile, documents and call stats.
func (h *Handler) handleExpertReview(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, loc.Sprintf("error.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}
	if !validID(id) {
		http.NotFound(w, r)
		return
	}
	view := templates.ExpertReviewView{}
	view.Flash, view.FlashIsError = reviewFlash(loc, r.URL.Query().Get(flashParam))

	ctx, cancel := h.apiContext(r)
	defer cancel()
	expert, err := h.client.GetExpert(ctx, id)
	if err != nil {
		log.Printf("get expert: %v", err)
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		view.ErrorMessage = apiErrorMessage(loc, err)
		h.renderExpertReview(w, r, loc, lang, view)
		return
	}
	view.Expert = expert
	view.Documents = templates.ExpertDocuments(expert, h.uploadsBase)
	view.ImageURL = consultapi.DocumentURL(h.uploadsBase, expert.Image)

	stats, err := h.client.ExpertCallStats(ctx, id)
	if err != nil {
		log.Printf("expert call stats: %v", err)
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		view.StatsError = loc.Sprintf("experts.stats_error")
	} else {
		view.Stats = stats
	}
	h.renderExpertReview(w, r, loc, lang, view)
}

func reviewFlash(loc *message.Printer, value string) (string, bool) {
	switch strings.TrimSpace(value) {
	case flashVerified:
		return loc.Sprintf("experts.marked_verified"), false
	case flashRejected:
		return loc.Sprintf("experts.marked_rejected"), false
	case flashFailed:
		return loc.Sprintf("experts.operation_failed"), true
	default:
		return "", false
	}
}

func (h *Handler) renderExpertReview(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.ExpertReviewView) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "experts.review_title", templates.ExpertReviewPage(page, view), http.StatusOK)
}

// handleExpertVerification moves an expert to the posted verification
// status. The API only toggles between verified and not verified, so the
// toggle is sent only when it changes which side the expert is on.
func (h *Handler) handleExpertVerification(w http.ResponseWriter, r *http.Request, id string) {
	loc, _ := h.localizer(w, r)
	back := routepath.ExpertReview(id)
	if !h.beginForm(w, r, loc, id, back) {
		return
	}
	target := strings.TrimSpace(r.PostForm.Get("status"))
	if target != consultapi.VerificationVerified && target != consultapi.VerificationRejected {
		http.Error(w, loc.Sprintf("error.form_invalid"), http.StatusBadRequest)
		return
	}

	flash := target
	err := h.mutate(r, "toggle expert verification", func(ctx context.Context) error {
		expert, err := h.client.GetExpert(ctx, id)
		if err != nil {
			return err
		}
		isVerified := expert.VerificationStatus() == consultapi.VerificationVerified
		if isVerified == (target == consultapi.VerificationVerified) {
			return nil
		}
		return h.client.ToggleExpertVerification(ctx, id)
	})
	if err != nil {
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		flash = flashFailed
	}
	sharedhtmx.Redirect(w, r, templates.AppendQueryParam(back, flashParam, flash))
}
