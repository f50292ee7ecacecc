// Package whatsapp строит deep-link для связи с профессионалом через
// WhatsApp: телефон приводится к цифровому виду, сообщение подставляется
// в шаблон и URL-кодируется.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const sendEndpoint = "https://api.whatsapp.com/send"

// FormatPhone удаляет из телефона все символы, кроме цифр.
func FormatPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Message формирует текст обращения к профессионалу. При пустом имени
// используется обезличенный вариант, при заданной услуге она добавляется
// в конец фразы.
func Message(professionalName, service, site string) string {
	if professionalName == "" {
		return fmt.Sprintf("Hola, vi tu perfil en %s, y me interesa contactarte.", site)
	}
	if service != "" {
		return fmt.Sprintf("Hola %s, vi tu perfil en %s, y me interesa contactarte para un proyecto de %s.",
			professionalName, site, service)
	}
	return fmt.Sprintf("Hola %s, vi tu perfil en %s, y me interesa contactarte para un proyecto.",
		professionalName, site)
}

// ContactURL строит ссылку вида
// https://api.whatsapp.com/send?phone=<digits>&text=<encoded>.
// Непустой customMessage заменяет шаблонное сообщение.
func ContactURL(phone, professionalName, service, site, customMessage string) string {
	text := customMessage
	if text == "" {
		text = Message(professionalName, service, site)
	}
	params := url.Values{}
	params.Set("phone", FormatPhone(phone))
	params.Set("text", text)
	return sendEndpoint + "?" + params.Encode()
}
