package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sanbobsan/weather-cli/internal/app"
	"github.com/sanbobsan/weather-cli/internal/core/domain"
	"github.com/sanbobsan/weather-cli/internal/render"
)

// weatherFlags holds the raw flag values of the weather command before they
// are resolved into forecast options.
type weatherFlags struct {
	daily  bool
	days   int
	hourly bool
	hours  int
	mixed  bool
}

func (c *CLI) newWeatherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather [location]",
		Short: "Показать прогноз погоды для указанного места",
		Long: `Показать прогноз погоды для указанного места.

Есть 3 типа прогноза:
  1. Текущая погода (по умолчанию) — температура, ветер, влажность сейчас.
  2. Прогноз по дням (-d, --days) — мин/макс температура, осадки, солнце.
  3. Почасовой прогноз (-H, --hours) — температура и условия на ближайшие часы.

Если не указать тип прогноза, будет показана только текущая погода.
Если указать -H без --hours, будет показан почасовой прогноз на 12 часов.
Если указать -d без --days, будет показан прогноз на 4 дня.
Если указать и дневной и почасовой прогноз, или флаг --mixed, будут
показаны все 3 типа одновременно.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := ""
			if len(args) > 0 {
				location = args[0]
			}

			flags := weatherFlags{}
			flags.daily, _ = cmd.Flags().GetBool("daily")
			flags.days, _ = cmd.Flags().GetInt("days")
			flags.hourly, _ = cmd.Flags().GetBool("hourly")
			flags.hours, _ = cmd.Flags().GetInt("hours")
			flags.mixed, _ = cmd.Flags().GetBool("mixed")

			return c.runWeather(cmd, location, flags)
		},
	}

	cmd.Flags().BoolP("daily", "d", false, "Показать прогноз по дням")
	cmd.Flags().Int("days", 0, "Указать количество дней, обычно 4")
	cmd.Flags().BoolP("hourly", "H", false, "Показать почасовой прогноз")
	cmd.Flags().Int("hours", 0, "Указать количество часов, обычно 12")
	cmd.Flags().BoolP("mixed", "m", false, "Показать все 3 типа прогноза")

	return cmd
}

// runWeather resolves the location (argument, config default, or interactive
// prompt) and renders the forecast. An unknown location is not an error: it
// renders a panel and exits cleanly.
func (c *CLI) runWeather(cmd *cobra.Command, location string, flags weatherFlags) error {
	out := cmd.OutOrStdout()

	if location == "" {
		if def, err := c.app.DefaultLocation(); err == nil && def != "" {
			location = def
		} else {
			prompted, err := promptLocation(cmd)
			if err != nil {
				return err
			}
			location = prompted
		}
	}

	opts := resolveForecastOptions(flags)

	weather, err := c.app.Forecast(cmd.Context(), location, opts)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			_, _ = fmt.Fprintln(out, render.NotFound(location))
			return nil
		}
		return err
	}

	_, _ = fmt.Fprintln(out, render.Weather(weather, opts.Days, opts.Hours))
	return nil
}

// resolveForecastOptions turns raw flags into a forecast type with defaults
// filled in: days fall back to 4 and hours to 12 when a section is selected
// without an explicit count.
func resolveForecastOptions(flags weatherFlags) app.ForecastOptions {
	wantDaily := flags.daily || flags.days > 0
	wantHourly := flags.hourly || flags.hours > 0

	opts := app.ForecastOptions{
		Days:  flags.days,
		Hours: flags.hours,
	}

	switch {
	case flags.mixed || (wantDaily && wantHourly):
		opts.Type = domain.ForecastMixed
	case wantDaily:
		opts.Type = domain.ForecastDaily
	case wantHourly:
		opts.Type = domain.ForecastHourly
	default:
		opts.Type = domain.ForecastCurrent
		return opts
	}

	if opts.Type.IncludesDaily() && opts.Days == 0 {
		opts.Days = domain.DefaultDays
	}
	if opts.Type.IncludesHourly() && opts.Hours == 0 {
		opts.Hours = domain.DefaultHours
	}

	return opts
}

// promptLocation asks the user for a location until a non-empty answer is
// given. When standard input is not a terminal there is nobody to ask.
func promptLocation(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return "", domain.ErrNoLocation
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(in)

	for {
		_, _ = fmt.Fprint(out, "Укажите место: ")

		line, err := reader.ReadString('\n')
		if location := strings.TrimSpace(line); location != "" {
			_, _ = fmt.Fprintln(out)
			return location, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", domain.ErrNoLocation
			}
			return "", err
		}
	}
}
