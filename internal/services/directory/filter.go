package directory

import (
	"strings"

	"github.com/khussac/proconnect-api/internal/models"
)

// Apply возвращает подпоследовательность записей, удовлетворяющих всем
// заданным критериям фильтра. Порядок исходного списка сохраняется,
// пересортировки нет.
func Apply(list []*models.Professional, f models.Filter) []*models.Professional {
	result := make([]*models.Professional, 0, len(list))
	for _, p := range list {
		if Matches(p, f) {
			result = append(result, p)
		}
	}
	return result
}

// Matches проверяет запись на соответствие фильтру. Критерии соединяются
// конъюнктивно; незаданный критерий не ограничивает запись.
func Matches(p *models.Professional, f models.Filter) bool {
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if f.Location != "" && !matchesLocation(p, f.Location) {
		return false
	}
	if f.MinRate != nil && p.Rate.Min < *f.MinRate {
		return false
	}
	if f.MaxRate != nil && p.Rate.Max > *f.MaxRate {
		return false
	}
	return true
}

// matchesSearch ищет подстроку без учёта регистра в имени, профессии
// или любой из услуг.
func matchesSearch(p *models.Professional, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Profession), term) {
		return true
	}
	for _, service := range p.Services {
		if strings.Contains(strings.ToLower(service), term) {
			return true
		}
	}
	return false
}

// matchesLocation ищет подстроку без учёта регистра в районе или городе.
func matchesLocation(p *models.Professional, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Location.District), term) ||
		strings.Contains(strings.ToLower(p.Location.City), term)
}
