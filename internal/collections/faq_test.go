package collections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFAQsDeterminism(t *testing.T) {
	agg := BuildAggregate(riverCruiseScenario(), riverCruisesConfig())

	first := GenerateFAQs(testRenderConfig(), agg)
	second := GenerateFAQs(testRenderConfig(), agg)
	assert.Equal(t, first, second)
}

func TestGenerateFAQsCap(t *testing.T) {
	agg := BuildAggregate(riverCruiseScenario(), riverCruisesConfig())
	faqs := GenerateFAQs(testRenderConfig(), agg)
	assert.LessOrEqual(t, len(faqs), 14)
}

// Conditional entries are omitted on an empty aggregate; the
// unconditional template questions still appear.
func TestGenerateFAQsEmptyAggregate(t *testing.T) {
	agg := BuildAggregate(nil, riverCruisesConfig())
	faqs := GenerateFAQs(testRenderConfig(), agg)
	require.NotEmpty(t, faqs)

	questions := make([]string, len(faqs))
	for i, faq := range faqs {
		questions[i] = faq.Question
	}

	assert.Contains(t, questions, "What are River Cruises holidays?")
	assert.Contains(t, questions, "What's included in a River Cruises package?")
	assert.Contains(t, questions, "Are flights included?")

	for _, q := range questions {
		assert.NotContains(t, strings.ToLower(q), "cost", "price FAQ must be omitted without price data")
	}
}

func TestGenerateFAQsConditionalEntries(t *testing.T) {
	agg := BuildAggregate(riverCruiseScenario(), riverCruisesConfig())
	faqs := GenerateFAQs(testRenderConfig(), agg)

	questions := make([]string, len(faqs))
	for i, faq := range faqs {
		questions[i] = faq.Question
	}

	assert.Contains(t, questions, "How much does a River Cruises holiday cost?")
	assert.Contains(t, questions, "How long are River Cruises holidays?")
	assert.Contains(t, questions, "Which destinations do River Cruises holidays visit?")
	assert.Contains(t, questions, "What styles of River Cruises holiday are there?")
}

// The candidate order is fixed: conditional omission may shorten the
// list but never reorders it.
func TestGenerateFAQsFixedOrder(t *testing.T) {
	full := GenerateFAQs(testRenderConfig(), BuildAggregate(riverCruiseScenario(), riverCruisesConfig()))
	sparse := GenerateFAQs(testRenderConfig(), BuildAggregate(nil, riverCruisesConfig()))

	index := func(faqs []FAQ, question string) int {
		for i, faq := range faqs {
			if faq.Question == question {
				return i
			}
		}
		return -1
	}

	prev := -1
	for _, faq := range sparse {
		i := index(full, faq.Question)
		require.GreaterOrEqual(t, i, 0, "sparse question %q missing from full list", faq.Question)
		assert.Greater(t, i, prev, "question %q out of order", faq.Question)
		prev = i
	}
}

func TestGenerateFAQsAnswersInterpolateData(t *testing.T) {
	agg := BuildAggregate(riverCruiseScenario(), riverCruisesConfig())
	faqs := GenerateFAQs(testRenderConfig(), agg)

	var priceAnswer string
	for _, faq := range faqs {
		if faq.Question == "How much does a River Cruises holiday cost?" {
			priceAnswer = faq.Answer
		}
	}
	require.NotEmpty(t, priceAnswer)
	assert.Contains(t, priceAnswer, "£1200")
	assert.Contains(t, priceAnswer, "£1300")
	assert.Contains(t, priceAnswer, "£1400")
}

// The enquiry answer carries the configured contact address; without one
// it falls back to the form-and-phone wording.
func TestGenerateFAQsContactEmail(t *testing.T) {
	agg := BuildAggregate(riverCruiseScenario(), riverCruisesConfig())

	enquireAnswer := func(faqs []FAQ) string {
		for _, faq := range faqs {
			if faq.Question == "How do I enquire about a River Cruises package?" {
				return faq.Answer
			}
		}
		return ""
	}

	rc := testRenderConfig()
	answer := enquireAnswer(GenerateFAQs(rc, agg))
	require.NotEmpty(t, answer)
	assert.Contains(t, answer, "enquiries@example.travel")

	rc.ContactEmail = ""
	answer = enquireAnswer(GenerateFAQs(rc, agg))
	require.NotEmpty(t, answer)
	assert.NotContains(t, answer, "@")
}

func TestJoinNatural(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{items: nil, want: ""},
		{items: []string{"a"}, want: "a"},
		{items: []string{"a", "b"}, want: "a and b"},
		{items: []string{"a", "b", "c"}, want: "a, b and c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, joinNatural(tt.items))
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "£1200", formatPrice("GBP", 1200))
	assert.Equal(t, "£1250.50", formatPrice("GBP", 1250.5))
	assert.Equal(t, "£800", formatPrice("", 800))
	assert.Equal(t, "$999", formatPrice("USD", 999))
	assert.Equal(t, "€999", formatPrice("EUR", 999))
	assert.Equal(t, "AUD 1200", formatPrice("AUD", 1200))
	assert.Equal(t, "AUD 1250.50", formatPrice("AUD", 1250.5))
}
