package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbobsan/weather-cli/cmd/wthr/commands"
	"github.com/sanbobsan/weather-cli/internal/app"
	"github.com/sanbobsan/weather-cli/internal/build"
	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

type mockApp struct {
	forecastFunc func(ctx context.Context, location string, opts app.ForecastOptions) (*domain.Weather, error)
	defaultFunc  func() (string, error)
	setFunc      func(location string) error
	clearFunc    func(opts app.ClearOptions) error
}

func (m *mockApp) Forecast(ctx context.Context, location string, opts app.ForecastOptions) (*domain.Weather, error) {
	if m.forecastFunc != nil {
		return m.forecastFunc(ctx, location, opts)
	}
	return &domain.Weather{LocationName: location}, nil
}

func (m *mockApp) DefaultLocation() (string, error) {
	if m.defaultFunc != nil {
		return m.defaultFunc()
	}
	return "", nil
}

func (m *mockApp) SetDefaultLocation(location string) error {
	if m.setFunc != nil {
		return m.setFunc(location)
	}
	return nil
}

func (m *mockApp) Clear(opts app.ClearOptions) error {
	if m.clearFunc != nil {
		return m.clearFunc(opts)
	}
	return nil
}

func TestCommands_Weather(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ForecastOptions
		var capturedLocation string

		mock := &mockApp{
			forecastFunc: func(_ context.Context, location string, opts app.ForecastOptions) (*domain.Weather, error) {
				capturedLocation = location
				capturedOpts = opts
				return &domain.Weather{LocationName: location}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"weather", "Берн", "-d", "--days", "6"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Берн", capturedLocation)
		assert.Equal(t, domain.ForecastDaily, capturedOpts.Type)
		assert.Equal(t, 6, capturedOpts.Days)
	})

	t.Run("daily and hourly together resolve to mixed", func(t *testing.T) {
		var capturedOpts app.ForecastOptions

		mock := &mockApp{
			forecastFunc: func(_ context.Context, location string, opts app.ForecastOptions) (*domain.Weather, error) {
				capturedOpts = opts
				return &domain.Weather{LocationName: location}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"weather", "Берн", "-d", "-H"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.ForecastMixed, capturedOpts.Type)
		assert.Equal(t, domain.DefaultDays, capturedOpts.Days)
		assert.Equal(t, domain.DefaultHours, capturedOpts.Hours)
	})

	t.Run("no flags default to current forecast", func(t *testing.T) {
		var capturedOpts app.ForecastOptions

		mock := &mockApp{
			forecastFunc: func(_ context.Context, location string, opts app.ForecastOptions) (*domain.Weather, error) {
				capturedOpts = opts
				return &domain.Weather{LocationName: location}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"weather", "Берн"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.ForecastCurrent, capturedOpts.Type)
		assert.Zero(t, capturedOpts.Days)
		assert.Zero(t, capturedOpts.Hours)
	})

	t.Run("bare root aliases to weather", func(t *testing.T) {
		var capturedOpts app.ForecastOptions
		var capturedLocation string

		mock := &mockApp{
			forecastFunc: func(_ context.Context, location string, opts app.ForecastOptions) (*domain.Weather, error) {
				capturedLocation = location
				capturedOpts = opts
				return &domain.Weather{LocationName: location}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"Берн"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Берн", capturedLocation)
		assert.Equal(t, domain.ForecastCurrent, capturedOpts.Type)
	})

	t.Run("falls back to configured location", func(t *testing.T) {
		var capturedLocation string

		mock := &mockApp{
			defaultFunc: func() (string, error) { return "Цюрих", nil },
			forecastFunc: func(_ context.Context, location string, _ app.ForecastOptions) (*domain.Weather, error) {
				capturedLocation = location
				return &domain.Weather{LocationName: location}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"weather"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Цюрих", capturedLocation)
	})

	t.Run("prompts when nothing is configured", func(t *testing.T) {
		var capturedLocation string

		mock := &mockApp{
			forecastFunc: func(_ context.Context, location string, _ app.ForecastOptions) (*domain.Weather, error) {
				capturedLocation = location
				return &domain.Weather{LocationName: location}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetInput(strings.NewReader("\nБерн\n"))
		cli.SetArgs([]string{"weather"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Берн", capturedLocation)
		assert.Contains(t, buf.String(), "Укажите место:")
	})

	t.Run("fails when the prompt is never answered", func(t *testing.T) {
		mock := &mockApp{
			forecastFunc: func(_ context.Context, _ string, _ app.ForecastOptions) (*domain.Weather, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetInput(strings.NewReader(""))
		cli.SetArgs([]string{"weather"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrNoLocation)
	})

	t.Run("unknown location renders a panel without failing", func(t *testing.T) {
		mock := &mockApp{
			forecastFunc: func(_ context.Context, _ string, _ app.ForecastOptions) (*domain.Weather, error) {
				return nil, domain.ErrLocationNotFound
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"weather", "нигде"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Локация 'нигде' не найдена")
	})

	t.Run("propagates forecast errors", func(t *testing.T) {
		mock := &mockApp{
			forecastFunc: func(_ context.Context, _ string, _ app.ForecastOptions) (*domain.Weather, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"weather", "Берн"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Set(t *testing.T) {
	t.Run("saves the argument", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			setFunc: func(location string) error {
				captured = location
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"set", "Берн"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Берн", captured)
		assert.Contains(t, buf.String(), `"Берн" сохранено в конфиг`)
	})

	t.Run("prompts without an argument", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			setFunc: func(location string) error {
				captured = location
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetInput(strings.NewReader("Цюрих\n"))
		cli.SetArgs([]string{"set"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Цюрих", captured)
	})
}

func TestCommands_Get(t *testing.T) {
	t.Run("shows the configured location", func(t *testing.T) {
		mock := &mockApp{
			defaultFunc: func() (string, error) { return "Берн", nil },
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"get"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Ваше место: Берн")
	})

	t.Run("reports an empty config", func(t *testing.T) {
		mock := &mockApp{}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"get"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Ваше место не указано")
	})
}

func TestCommands_Clear(t *testing.T) {
	t.Run("clears everything by default", func(t *testing.T) {
		var captured app.ClearOptions
		mock := &mockApp{
			clearFunc: func(opts app.ClearOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"clear"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, captured.Config)
		assert.True(t, captured.Cache)
		assert.Contains(t, buf.String(), "Конфиг и кеш удалены")
	})

	t.Run("clears only the cache when asked", func(t *testing.T) {
		var captured app.ClearOptions
		mock := &mockApp{
			clearFunc: func(opts app.ClearOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"clear", "--cache"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, captured.Config)
		assert.True(t, captured.Cache)
		assert.Contains(t, buf.String(), "Удалено: кеш")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
