package filterengine

import "time"

// MatchAll сентинел "без ограничения" для точных фильтров (франшиза, категория)
const MatchAll = "all"

// DateRange диапазон дат фильтра активности
// Обе границы опциональны; To трактуется включительно до конца дня
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsEmpty проверяет, что диапазон не накладывает ограничений
func (r *DateRange) IsEmpty() bool {
	return r == nil || (r.From == nil && r.To == nil)
}

// IntRange целочисленный диапазон (например, баллы лояльности)
// Обе границы опциональны и включительны
type IntRange struct {
	Min *int
	Max *int
}

// IsEmpty проверяет, что диапазон не накладывает ограничений
func (r *IntRange) IsEmpty() bool {
	return r == nil || (r.Min == nil && r.Max == nil)
}

// State декларативный набор активных ограничений фильтра.
// Поля независимы; запись удовлетворяет фильтру, только если проходит
// каждое активное ограничение (логическое AND по полям)
type State struct {
	// Search подстрока для регистронезависимого поиска по имени/email/телефону/названию франшизы
	Search string

	// FranchiseID точное совпадение, MatchAll — без ограничения
	FranchiseID string

	// Category точное совпадение категории записи, MatchAll — без ограничения
	Category string

	// Activity диапазон по таймстемпу последней активности
	Activity *DateRange

	// MinCount / MaxCount включительные границы счетчика (визиты, брони)
	MinCount *int
	MaxCount *int

	// Tags запись должна иметь хотя бы один из перечисленных тегов (OR внутри набора)
	Tags []string

	// Loyalty включительные границы баллов лояльности (отсутствующие баллы = 0)
	Loyalty *IntRange

	// OfferRedeemed true — есть хотя бы один погашенный оффер,
	// false — нет ни одного погашенного, nil — без ограничения
	OfferRedeemed *bool
}

// DefaultState возвращает свежее состояние фильтра без ограничений.
// Каждый вызов возвращает независимое значение: мутация результата
// не может испортить закешированный дефолт
func DefaultState() State {
	return State{
		FranchiseID: MatchAll,
		Category:    MatchAll,
	}
}

// Option частичное обновление состояния фильтра
type Option func(*State)

// WithSearch устанавливает поисковую подстроку
func WithSearch(query string) Option {
	return func(s *State) { s.Search = query }
}

// WithFranchise устанавливает фильтр по франшизе
func WithFranchise(franchiseID string) Option {
	return func(s *State) { s.FranchiseID = franchiseID }
}

// WithCategory устанавливает фильтр по категории
func WithCategory(category string) Option {
	return func(s *State) { s.Category = category }
}

// WithActivityRange устанавливает диапазон активности; nil снимает ограничение
func WithActivityRange(r *DateRange) Option {
	return func(s *State) { s.Activity = copyDateRange(r) }
}

// WithMinCount устанавливает нижнюю границу счетчика; nil снимает ограничение
func WithMinCount(min *int) Option {
	return func(s *State) { s.MinCount = copyInt(min) }
}

// WithMaxCount устанавливает верхнюю границу счетчика; nil снимает ограничение
func WithMaxCount(max *int) Option {
	return func(s *State) { s.MaxCount = copyInt(max) }
}

// WithTags устанавливает набор требуемых тегов; пустой набор снимает ограничение
func WithTags(tags []string) Option {
	return func(s *State) {
		if len(tags) == 0 {
			s.Tags = nil
			return
		}
		s.Tags = append([]string(nil), tags...)
	}
}

// WithLoyaltyRange устанавливает диапазон баллов лояльности; nil снимает ограничение
func WithLoyaltyRange(r *IntRange) Option {
	return func(s *State) { s.Loyalty = copyIntRange(r) }
}

// WithOfferRedeemed устанавливает фильтр по погашенным офферам; nil снимает ограничение
func WithOfferRedeemed(redeemed *bool) Option {
	return func(s *State) { s.OfferRedeemed = copyBool(redeemed) }
}

// With возвращает новое состояние с примененными частичными обновлениями.
// Исходное состояние не изменяется; все вложенные структуры копируются,
// поэтому результат не делит мутируемые данные с исходником
func (s State) With(opts ...Option) State {
	next := s.clone()
	for _, opt := range opts {
		opt(&next)
	}
	return next
}

// clone возвращает глубокую копию состояния
func (s State) clone() State {
	next := s
	next.Activity = copyDateRange(s.Activity)
	next.MinCount = copyInt(s.MinCount)
	next.MaxCount = copyInt(s.MaxCount)
	next.Loyalty = copyIntRange(s.Loyalty)
	next.OfferRedeemed = copyBool(s.OfferRedeemed)
	if s.Tags != nil {
		next.Tags = append([]string(nil), s.Tags...)
	}
	return next
}

func copyDateRange(r *DateRange) *DateRange {
	if r == nil {
		return nil
	}
	copied := DateRange{}
	if r.From != nil {
		from := *r.From
		copied.From = &from
	}
	if r.To != nil {
		to := *r.To
		copied.To = &to
	}
	return &copied
}

func copyIntRange(r *IntRange) *IntRange {
	if r == nil {
		return nil
	}
	copied := IntRange{
		Min: copyInt(r.Min),
		Max: copyInt(r.Max),
	}
	return &copied
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
