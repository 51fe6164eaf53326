package app

import (
	"net/http"
	"time"

	"github.com/metinatakli/movie-theatre/api"
	appvalidator "github.com/metinatakli/movie-theatre/internal/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// GetNowShowing renders the current show. The optional at query parameter
// replaces the time of day while keeping today's date.
func (app *Application) GetNowShowing(w http.ResponseWriter, r *http.Request, params api.GetNowShowingParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	now := app.now()
	if params.At != nil {
		// already validated
		clock, _ := time.Parse(appvalidator.ClockLayout, *params.At)
		now = time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
	}

	period, err := app.theatre.ResolvePeriod(now)
	if err != nil {
		app.theatreErrorResponse(w, r, err)
		return
	}

	show, err := app.theatre.Show(now)
	if err != nil {
		app.theatreErrorResponse(w, r, err)
		return
	}

	if app.showCounter != nil {
		app.showCounter.Add(r.Context(), 1, metric.WithAttributes(attribute.String("period", period.String())))
	}

	resp := api.NowShowingResponse{
		At:     now.Format(appvalidator.ClockLayout),
		Period: period.String(),
		Show:   show,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMoviePeriod reports the period a movie is eligible for. The title
// arrives decoded once by the router.
func (app *Application) GetMoviePeriod(w http.ResponseWriter, r *http.Request, title string) {
	period, err := app.theatre.When(title)
	if err != nil {
		app.theatreErrorResponse(w, r, err)
		return
	}

	resp := api.MoviePeriodResponse{
		Title:  title,
		Period: period.String(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSchedule(w http.ResponseWriter, r *http.Request) {
	periods := app.theatre.Config().Periods()

	resp := api.ScheduleResponse{
		Periods: make([]api.PeriodSummary, len(periods)),
	}

	for i, p := range periods {
		resp.Periods[i] = api.PeriodSummary{
			Key:         p.Key.String(),
			Start:       p.Start.String(),
			End:         p.End.String(),
			Hall:        p.Hall,
			Description: p.Description(),
		}
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
