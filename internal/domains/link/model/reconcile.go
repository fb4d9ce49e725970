package model

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	catalogmodel "recordlabel-backend/internal/domains/catalog/model"
)

const MaxURLLength = 2048

// Op is the kind of write a change needs.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change is one platform's pending write. For deletes URL is the stored value.
type Change[P Platform] struct {
	Platform P
	URL      string
}

// Plan is the categorized diff between stored links and a desired form.
type Plan[P Platform] struct {
	Create []Change[P]
	Update []Change[P]
	Delete []Change[P]
}

// Empty reports whether the plan has nothing to write.
func (p Plan[P]) Empty() bool {
	return len(p.Create) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

// Categorize diffs existing rows against the desired URLs, visiting every
// vocabulary variant exactly once in vocabulary order. Blank or missing desired
// values mean "no link". Platforms outside the vocabulary are ignored.
func Categorize[P Platform](vocab Vocabulary[P], existing []Link[P], desired map[P]string) Plan[P] {
	stored := make(map[P]string, len(existing))
	for _, l := range existing {
		stored[l.Platform] = l.URL
	}

	var plan Plan[P]
	for _, p := range vocab.Variants {
		want := strings.TrimSpace(desired[p])
		have, exists := stored[p]

		switch {
		case !exists && want != "":
			plan.Create = append(plan.Create, Change[P]{Platform: p, URL: want})
		case exists && want == "":
			plan.Delete = append(plan.Delete, Change[P]{Platform: p, URL: have})
		case exists && want != have:
			plan.Update = append(plan.Update, Change[P]{Platform: p, URL: want})
		}
	}
	return plan
}

// Writer performs single-row link writes for one artist, usually bound to a transaction.
type Writer[P Platform] interface {
	Insert(ctx context.Context, platform P, url string) error
	Update(ctx context.Context, platform P, url string) error
	Delete(ctx context.Context, platform P) error
}

// ValidateURL checks a URL before it is stored for the given platform. The
// text is stored as entered; only emptiness and length are checked.
func ValidateURL[P Platform](platform P, url string) error {
	err := validation.Validate(url,
		validation.Required.Error("URL is required."),
		validation.RuneLength(0, MaxURLLength).Error("URL is too long."),
	)
	if err != nil {
		return catalogmodel.NewValidationError(FieldName(platform), err.Error())
	}
	return nil
}

// ApplyPlan runs creates, then updates, then deletes, stopping at the first
// failure and reporting the platform and URL that caused it.
func ApplyPlan[P Platform](ctx context.Context, plan Plan[P], w Writer[P]) error {
	for _, c := range plan.Create {
		if err := ValidateURL(c.Platform, c.URL); err != nil {
			return newLinkError(OpCreate, c, err)
		}
		if err := w.Insert(ctx, c.Platform, c.URL); err != nil {
			return newLinkError(OpCreate, c, err)
		}
	}
	for _, c := range plan.Update {
		if err := ValidateURL(c.Platform, c.URL); err != nil {
			return newLinkError(OpUpdate, c, err)
		}
		if err := w.Update(ctx, c.Platform, c.URL); err != nil {
			return newLinkError(OpUpdate, c, err)
		}
	}
	for _, c := range plan.Delete {
		if err := w.Delete(ctx, c.Platform); err != nil {
			return newLinkError(OpDelete, c, err)
		}
	}
	return nil
}
