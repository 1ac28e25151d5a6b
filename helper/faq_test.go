package helper

import (
	"testing"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerQuestion(t *testing.T) {
	e := setup(t)
	faqs := []model.FAQ{
		{Question: "When are you open?", Answer: "Monday to Saturday, 9am to 6pm.", Keyword: "open, hours"},
		{Question: "How do I pay?", Answer: "Card, FPX or e-wallet.", Keyword: " ,pay"},
		{Question: "Do you groom cats?", Answer: "Yes, cats and dogs.", Keyword: "cat"},
	}
	require.NoError(t, e.db.Create(&faqs).Error)

	cases := []struct {
		question string
		want     string
	}{
		{"What are your opening HOURS?", faqs[0].Answer},
		{"can I pay by card", faqs[1].Answer},
		{"Is my cat welcome?", faqs[2].Answer},
		{"Do you sell food?", constants.FAQ_FALLBACK_ANSWER},
	}
	for _, tc := range cases {
		t.Run(tc.question, func(t *testing.T) {
			got, err := AnswerQuestion(e.db, tc.question)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
