// Package telegram implements inquiry delivery to the operator's Telegram
// inbox: message formatting, server-side bot push and client-side deep-link
// handoff.
package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/olehsv/videolanding/internal/models"
)

// occasionLabels maps event type identifiers to their display labels.
// Unknown identifiers pass through unchanged.
var occasionLabels = map[string]string{
	string(models.Wedding):     "💒 Весілля",
	string(models.Birthday):    "🎂 День народження",
	string(models.Anniversary): "🎉 Ювілей",
	string(models.Corporate):   "🏢 Корпоратив",
	string(models.Other):       "📋 Інше",
}

// markdownSpecial is the set of characters Telegram Markdown treats as
// formatting syntax.
const markdownSpecial = "_*[]()~`>#+=|{}.!-"

// kyiv is the fixed time zone used for the message timestamp.
var kyiv = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// EscapeMarkdown prefixes every Markdown special character in s with a
// backslash so user-supplied text cannot alter the rendered message
// structure.
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatInquiry renders an inquiry into the human-readable Markdown block
// sent to the operator. Every user-supplied field is escaped individually
// before interpolation. The function is pure: same inquiry and same clock
// reading produce identical output.
func FormatInquiry(inq models.Inquiry, now time.Time) string {
	label := occasionLabels[inq.Occasion]
	if label == "" {
		label = inq.Occasion
	}

	email := "_не вказано_"
	if inq.Email != "" {
		email = EscapeMarkdown(inq.Email)
	}

	var b strings.Builder
	b.WriteString("🎬 *НОВА ЗАЯВКА НА ВІДЕО*\n\n")
	fmt.Fprintf(&b, "👤 *Ім'я:* %s\n", EscapeMarkdown(inq.Name))
	fmt.Fprintf(&b, "📱 *Телефон:* %s\n", EscapeMarkdown(inq.Phone))
	fmt.Fprintf(&b, "📧 *Email:* %s\n\n", email)
	fmt.Fprintf(&b, "📅 *Тип події:* %s\n", label)
	fmt.Fprintf(&b, "🎥 *Кількість відео:* %s\n", EscapeMarkdown(inq.VideoCount))
	if inq.Message != "" {
		fmt.Fprintf(&b, "\n💬 *Додаткова інформація:*\n%s\n", EscapeMarkdown(inq.Message))
	}
	b.WriteString("\n━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "📆 Дата: %s", now.In(kyiv).Format("02.01.2006, 15:04:05"))

	return b.String()
}
