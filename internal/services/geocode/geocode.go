// Package geocode реализует поиск адресов для редактора местоположения.
//
// Поставщик геокодирования имитируется: кандидаты синтезируются из
// запроса со случайным разбросом координат вокруг центра Лимы. Реальный
// провайдер подставляется заменой реализации Lookup.
package geocode

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mmcloughlin/geohash"

	"github.com/khussac/proconnect-api/internal/models"
)

// Минимальная длина запроса в рунах.
const minQueryLen = 3

// Точность ячейки геохеша в знаках. Шесть знаков дают ячейку порядка
// квартала, достаточно для подсказок адресов.
const cellPrecision = 6

// Candidate результат поиска адреса.
type Candidate struct {
	Address     string             `json:"address"`
	Coordinates models.Coordinates `json:"coordinates"`
	CellID      string             `json:"cellId"`
}

// Lookup описывает поставщика подсказок адресов.
type Lookup interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// Центры округов Лимы для случая, когда свободный адрес не задан.
var limaDistricts = map[string]models.Coordinates{
	"Miraflores":           {Lat: -12.1201, Lng: -77.0341},
	"San Isidro":           {Lat: -12.0956, Lng: -77.0301},
	"Barranco":             {Lat: -12.1419, Lng: -77.0206},
	"Surco":                {Lat: -12.1508, Lng: -76.9933},
	"La Molina":            {Lat: -12.0759, Lng: -76.9508},
	"Pueblo Libre":         {Lat: -12.0708, Lng: -77.0625},
	"Jesús María":          {Lat: -12.0833, Lng: -77.0500},
	"Magdalena":            {Lat: -12.1000, Lng: -77.0667},
	"San Miguel":           {Lat: -12.0833, Lng: -77.0833},
	"Callao":               {Lat: -12.0566, Lng: -77.1181},
	"Lince":                {Lat: -12.0833, Lng: -77.0333},
	"Breña":                {Lat: -12.0667, Lng: -77.0500},
	"La Victoria":          {Lat: -12.0667, Lng: -77.0167},
	"Rimac":                {Lat: -12.0333, Lng: -77.0167},
	"Los Olivos":           {Lat: -11.9833, Lng: -77.0667},
	"San Martín de Porres": {Lat: -12.0000, Lng: -77.0833},
	"Independencia":        {Lat: -11.9833, Lng: -77.0500},
	"Comas":                {Lat: -11.9500, Lng: -77.0667},
	"Carabayllo":           {Lat: -11.9167, Lng: -77.0500},
	"Santa Rosa":           {Lat: -11.8833, Lng: -77.0333},
}

// DistrictCenter возвращает координаты центра известного округа.
func DistrictCenter(name string) (models.Coordinates, bool) {
	c, ok := limaDistricts[name]
	return c, ok
}

// Districts возвращает имена известных округов в алфавитном порядке.
func Districts() []string {
	names := make([]string, 0, len(limaDistricts))
	for name := range limaDistricts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Simulated синтезирует кандидатов вместо обращения к провайдеру.
type Simulated struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulated создает имитацию поставщика подсказок.
func NewSimulated() *Simulated {
	return &Simulated{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Search возвращает два кандидата вокруг центра Лимы и Мирафлореса.
// Запрос короче трех рун дает пустой список без ошибки.
func (s *Simulated) Search(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return []Candidate{
		s.candidate(query+", Lima, Perú", models.Coordinates{Lat: -12.0464, Lng: -77.0428}, 0.1),
		s.candidate(query+", Miraflores, Lima, Perú", models.Coordinates{Lat: -12.1191, Lng: -77.0292}, 0.05),
	}, nil
}

func (s *Simulated) candidate(address string, center models.Coordinates, spread float64) Candidate {
	coords := models.Coordinates{
		Lat: center.Lat + (s.rnd.Float64()-0.5)*spread,
		Lng: center.Lng + (s.rnd.Float64()-0.5)*spread,
	}
	return Candidate{
		Address:     address,
		Coordinates: coords,
		CellID:      geohash.EncodeWithPrecision(coords.Lat, coords.Lng, cellPrecision),
	}
}
