package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ekaraman/skyfare/internal/client/flights"
	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/retryx"
)

// offerView is one rendered result row, kept so sort/details can refer back
// to offers by their printed number.
type offerView struct {
	ID    string
	Offer models.FlightOffer
}

// Airports runs the debounced autocomplete once for a typed query.
func (a *App) Airports(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Airport or city", os.Stdout)
	if err != nil {
		return err
	}

	a.airportSearcher.ClearResults()
	a.airportSearcher.Search(query)
	if query == "" {
		printlnFn("Cleared")
		return nil
	}

	if err := waitSettled(ctx, func() bool {
		st := a.airportSearcher.State()
		return !st.Loading && (st.Results != nil || st.Err != nil)
	}); err != nil {
		return err
	}

	st := a.airportSearcher.State()
	if st.Err != nil {
		printlnFn("Airport search failed:", st.Err.Error())
		return st.Err
	}
	if st.Fallback {
		printlnFn("(offline sample data)")
	}
	for _, ap := range st.Results {
		printlnFn(fmt.Sprintf("%-6s %s, %s",
			ap.SkyID, ap.Presentation.Title, ap.Presentation.Subtitle))
	}
	return nil
}

// Nearby looks up airports around coordinates, retrying transient server
// failures and substituting the canned payload when the API stays down.
func (a *App) Nearby(ctx context.Context) error {
	latText, err := getSimpleText(a.reader, "Latitude", os.Stdout)
	if err != nil {
		return err
	}
	lngText, err := getSimpleText(a.reader, "Longitude", os.Stdout)
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		printlnFn("Invalid latitude:", latText)
		return err
	}
	lng, err := strconv.ParseFloat(lngText, 64)
	if err != nil {
		printlnFn("Invalid longitude:", lngText)
		return err
	}

	resp, err := retryx.Do(ctx, a.config.RetryCount, a.config.RetryDelay,
		func(ctx context.Context) (*models.NearbyAirportsResponse, error) {
			return a.flights.GetNearbyAirports(ctx, lat, lng)
		})
	if err != nil {
		printlnFn("(offline sample data)")
		resp = flights.FallbackNearby()
	}

	printlnFn("Current:", resp.Data.Current.Presentation.SuggestionTitle)
	for _, ap := range resp.Data.Nearby {
		printlnFn(" ", ap.Presentation.SuggestionTitle)
	}
	return nil
}

// Search prompts for a route and dates, resolves both endpoints through the
// airport search, and dispatches the flight search.
func (a *App) Search(ctx context.Context) error {
	origin, err := a.resolveAirport(ctx, "From (airport or city)")
	if err != nil {
		return err
	}
	destination, err := a.resolveAirport(ctx, "To (airport or city)")
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, "Departure date (YYYY-MM-DD, empty for tomorrow)", os.Stdout)
	if err != nil {
		return err
	}
	if date == "" {
		date = flights.FormatDate(time.Now().Add(24 * time.Hour))
	}
	returnDate, err := getSimpleText(a.reader, "Return date (YYYY-MM-DD, empty for one-way)", os.Stdout)
	if err != nil {
		return err
	}

	params := models.FlightSearchParams{
		OriginSkyID:         origin.Navigation.RelevantFlightParams.SkyID,
		OriginEntityID:      origin.Navigation.RelevantFlightParams.EntityID,
		DestinationSkyID:    destination.Navigation.RelevantFlightParams.SkyID,
		DestinationEntityID: destination.Navigation.RelevantFlightParams.EntityID,
		Date:                date,
		ReturnDate:          returnDate,
		Adults:              1,
	}
	if days := flights.CalculateTripDuration(date, returnDate); days > 0 {
		printlnFn(fmt.Sprintf("Trip length: %d days", days))
	}

	a.flightSearcher.Search(params)
	printlnFn("Searching...")

	if err := waitSettled(ctx, func() bool {
		return !a.flightSearcher.State().Loading
	}); err != nil {
		return err
	}

	st := a.flightSearcher.State()
	if st.Err != nil {
		printlnFn("Flight search failed:", st.Err.Error())
		return st.Err
	}
	a.renderOffers(st.Offers, st.Fallback)
	return nil
}

// Sort re-renders the last committed offers under a different criterion.
func (a *App) Sort(ctx context.Context, filter string) error {
	f := flights.Filter(filter)
	switch f {
	case flights.FilterBest, flights.FilterCheapest, flights.FilterFastest:
	default:
		printlnFn("Usage: sort best|cheapest|fastest")
		return nil
	}

	st := a.flightSearcher.State()
	if len(st.Offers) == 0 {
		printlnFn("No search results to sort")
		return nil
	}
	a.renderOffers(flights.SortOffers(st.Offers, f), st.Fallback)
	return nil
}

// Details fetches the full itinerary payload for a printed result number.
func (a *App) Details(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.offers) {
		printlnFn("Usage: details <number> (from the last search results)")
		return nil
	}
	view := a.offers[n-1]

	raw, err := retryx.Do(ctx, a.config.RetryCount, a.config.RetryDelay,
		func(ctx context.Context) (json.RawMessage, error) {
			return a.flights.GetFlightDetails(ctx, view.ID)
		})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(string(raw))
	return nil
}

// Calendar fetches day-by-day price bands for an origin.
func (a *App) Calendar(ctx context.Context) error {
	origin, err := getSimpleText(a.reader, "Origin sky id (e.g. IST)", os.Stdout)
	if err != nil {
		return err
	}
	fromDate, err := getSimpleText(a.reader, "From date (YYYY-MM-DD, empty for tomorrow)", os.Stdout)
	if err != nil {
		return err
	}
	if fromDate == "" {
		fromDate = flights.FormatDate(time.Now().Add(24 * time.Hour))
	}

	raw, err := retryx.Do(ctx, a.config.RetryCount, a.config.RetryDelay,
		func(ctx context.Context) (json.RawMessage, error) {
			return a.flights.GetPriceCalendar(ctx, origin, fromDate)
		})
	if err != nil {
		printlnFn("Price calendar unavailable:", err.Error())
		return err
	}
	printlnFn(string(raw))
	return nil
}

// Abort cancels an in-flight search.
func (a *App) Abort(ctx context.Context) error {
	a.flightSearcher.Abort()
	printlnFn("Search aborted")
	return nil
}

func (a *App) resolveAirport(ctx context.Context, prompt string) (models.Airport, error) {
	query, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return models.Airport{}, err
	}

	results, err := retryx.Do(ctx, a.config.RetryCount, a.config.RetryDelay,
		func(ctx context.Context) ([]models.Airport, error) {
			return a.flights.SearchAirports(ctx, query)
		})
	if err != nil || len(results) == 0 {
		printlnFn("(offline sample data)")
		results = flights.FallbackAirports()
	}

	pick := results[0]
	printlnFn("Using", pick.Presentation.SuggestionTitle)
	return pick, nil
}

func (a *App) renderOffers(offers []models.FlightOffer, fallback bool) {
	a.offers = a.offers[:0]
	a.lastWasFB = fallback

	if fallback {
		printlnFn("(offline sample data)")
	}
	if len(offers) == 0 {
		printlnFn("No flights found")
		return
	}

	for i, o := range offers {
		a.offers = append(a.offers, offerView{ID: o.ID, Offer: o})
		route, clock := "", ""
		if len(o.Legs) > 0 {
			route = o.Legs[0].Origin.SkyID + " -> " + o.Legs[0].Destination.SkyID
			_, clock = flights.ParseDateTime(o.Legs[0].Departure)
		}
		printlnFn(fmt.Sprintf("%2d. %-10s %-18s %-6s %-8s %d stops  %s",
			i+1, o.Price.Formatted, route, clock,
			flights.FormatDuration(o.TotalDuration), o.TransfersCount,
			carrierName(o)))
	}
}

func carrierName(o models.FlightOffer) string {
	if len(o.Carriers) > 0 {
		return o.Carriers[0].Name
	}
	if len(o.Legs) > 0 {
		return o.Legs[0].MarketingCarrier.Name
	}
	return ""
}
