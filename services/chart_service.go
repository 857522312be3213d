package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/D0n4ld07/healthtracker/models"
	"github.com/D0n4ld07/healthtracker/utils"

	"gorm.io/gorm"
)

// ErrUnknownChartKind marks a chart kind the API does not serve.
var ErrUnknownChartKind = errors.New("unknown chart kind")

type ChartService struct{ db *gorm.DB }

func NewChartService(db *gorm.DB) *ChartService { return &ChartService{db: db} }

type ChartSeries struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type ChartMeta struct {
	Range   string `json:"range"`
	GroupBy string `json:"group_by"`
}

type ChartData struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
	Meta   ChartMeta     `json:"meta"`
}

// Data builds the chart payload for one kind. Labels and series values
// are parallel slices ordered by bucket key ascending; buckets with no
// rows are simply absent.
func (s *ChartService) Data(userID uint, kind, rangeKey, groupBy, metric string, bound utils.DateRange) (*ChartData, error) {
	meta := ChartMeta{Range: rangeKey, GroupBy: groupBy}

	switch kind {
	case "meals":
		var rows []models.MealLog
		if err := s.boundedQuery(userID, "date", bound).Find(&rows).Error; err != nil {
			return nil, err
		}
		samples := make([]sample, 0, len(rows))
		for _, r := range rows {
			samples = append(samples, sample{t: r.Date, v: float64(r.Calories)})
		}
		labels, values := bucket(samples, groupBy, false)
		return &ChartData{
			Labels: labels,
			Series: []ChartSeries{{Name: "Calories In", Data: values}},
			Meta:   meta,
		}, nil

	case "fitness":
		var rows []models.FitnessLog
		if err := s.boundedQuery(userID, "date", bound).Find(&rows).Error; err != nil {
			return nil, err
		}
		name := "Calories Burned"
		samples := make([]sample, 0, len(rows))
		for _, r := range rows {
			v := float64(r.CaloriesBurned)
			if metric == "duration" {
				v = float64(r.DurationMin)
			}
			samples = append(samples, sample{t: r.Date, v: v})
		}
		if metric == "duration" {
			name = "Duration (min)"
		}
		labels, values := bucket(samples, groupBy, false)
		return &ChartData{
			Labels: labels,
			Series: []ChartSeries{{Name: name, Data: values}},
			Meta:   meta,
		}, nil

	case "sleep":
		var rows []models.SleepLog
		if err := s.boundedQuery(userID, "sleep_end", bound).Find(&rows).Error; err != nil {
			return nil, err
		}
		samples := make([]sample, 0, len(rows))
		for _, r := range rows {
			samples = append(samples, sample{t: r.SleepEnd, v: r.DurationHours})
		}
		labels, values := bucket(samples, groupBy, false)
		for i := range values {
			values[i] = round2(values[i])
		}
		return &ChartData{
			Labels: labels,
			Series: []ChartSeries{{Name: "Sleep (h)", Data: values}},
			Meta:   meta,
		}, nil

	case "weight":
		var rows []models.WeightLog
		if err := s.boundedQuery(userID, "date", bound).Find(&rows).Error; err != nil {
			return nil, err
		}
		weights := make([]sample, 0, len(rows))
		bmis := make([]sample, 0, len(rows))
		for _, r := range rows {
			weights = append(weights, sample{t: r.Date, v: r.WeightKg})
			bmis = append(bmis, sample{t: r.Date, v: r.BMI})
		}
		labels, wValues := bucket(weights, groupBy, true)
		_, bValues := bucket(bmis, groupBy, true)
		for i := range wValues {
			wValues[i] = round2(wValues[i])
			bValues[i] = round2(bValues[i])
		}
		return &ChartData{
			Labels: labels,
			Series: []ChartSeries{
				{Name: "Weight (kg)", Data: wValues},
				{Name: "BMI", Data: bValues},
			},
			Meta: meta,
		}, nil
	}

	return nil, ErrUnknownChartKind
}

func (s *ChartService) boundedQuery(userID uint, dateCol string, bound utils.DateRange) *gorm.DB {
	q := s.db.Where("user_id = ?", userID)
	if bound.Bounded {
		q = q.Where(dateCol+" BETWEEN ? AND ?", utils.DayStart(bound.Start), utils.DayEnd(bound.End))
	}
	return q
}

type sample struct {
	t time.Time
	v float64
}

// bucket groups samples by day, ISO week, or month, summing (or
// averaging) their values. Returned slices are ordered by group key
// ascending; keys sort lexicographically by construction.
func bucket(samples []sample, groupBy string, average bool) ([]string, []float64) {
	type acc struct {
		sum float64
		n   int
	}
	groups := map[string]*acc{}
	for _, s := range samples {
		key := bucketKey(s.t, groupBy)
		a, ok := groups[key]
		if !ok {
			a = &acc{}
			groups[key] = a
		}
		a.sum += s.v
		a.n++
	}

	labels := make([]string, 0, len(groups))
	for k := range groups {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	values := make([]float64, len(labels))
	for i, k := range labels {
		a := groups[k]
		if average {
			values[i] = a.sum / float64(a.n)
		} else {
			values[i] = a.sum
		}
	}
	return labels, values
}

func bucketKey(t time.Time, groupBy string) string {
	switch groupBy {
	case "month":
		return t.Format("2006-01")
	case "week":
		y, w := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	}
	return t.Format("2006-01-02")
}
