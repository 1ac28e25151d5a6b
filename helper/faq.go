package helper

import (
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"

	"gorm.io/gorm"
)

// AnswerQuestion returns the answer of the first FAQ with a keyword contained in question.
func AnswerQuestion(db *gorm.DB, question string) (string, error) {
	var faqs []model.FAQ
	if err := db.Order("id").Find(&faqs).Error; err != nil {
		return "", err
	}

	lower := strings.ToLower(question)
	for _, faq := range faqs {
		for _, keyword := range strings.Split(strings.ToLower(faq.Keyword), ",") {
			keyword = strings.TrimSpace(keyword)
			if keyword != "" && strings.Contains(lower, keyword) {
				return faq.Answer, nil
			}
		}
	}
	return constants.FAQ_FALLBACK_ANSWER, nil
}
