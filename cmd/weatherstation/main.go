package main

import (
	"fmt"
	"log"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rubenromani/ant"
)

// WeatherStation is the subject: it holds the current readings and fires a
// signal whenever one of them changes, plus alerts for extreme values.
type WeatherStation struct {
	TemperatureChanged *ant.Signal1[float64]
	HumidityChanged    *ant.Signal1[float64]
	PressureChanged    *ant.Signal1[float64]
	WeatherAlert       *ant.Signal1[string]

	temperature float64
	humidity    float64
	pressure    float64
}

func NewWeatherStation() *WeatherStation {
	return &WeatherStation{
		TemperatureChanged: ant.NewSignal1[float64](),
		HumidityChanged:    ant.NewSignal1[float64](),
		PressureChanged:    ant.NewSignal1[float64](),
		WeatherAlert:       ant.NewSignal1[string](),
		temperature:        20.0,
		humidity:           50.0,
		pressure:           1013.25,
	}
}

func (ws *WeatherStation) SetTemperature(temp float64) {
	if ws.temperature == temp {
		return
	}
	ws.temperature = temp
	ws.TemperatureChanged.Emit(temp)

	if temp > 35.0 {
		ws.WeatherAlert.Emit(fmt.Sprintf("High temperature warning: %.1f°C", temp))
	} else if temp < -10.0 {
		ws.WeatherAlert.Emit(fmt.Sprintf("Low temperature warning: %.1f°C", temp))
	}
}

func (ws *WeatherStation) SetHumidity(humidity float64) {
	if ws.humidity == humidity {
		return
	}
	ws.humidity = humidity
	ws.HumidityChanged.Emit(humidity)

	if humidity > 80.0 {
		ws.WeatherAlert.Emit(fmt.Sprintf("High humidity warning: %.1f%%", humidity))
	}
}

func (ws *WeatherStation) SetPressure(pressure float64) {
	if ws.pressure == pressure {
		return
	}
	ws.pressure = pressure
	ws.PressureChanged.Emit(pressure)

	if pressure < 1000.0 {
		ws.WeatherAlert.Emit(fmt.Sprintf("Low pressure warning: %.2f hPa", pressure))
	}
}

// WeatherDisplay mirrors the station's readings. Its subscriptions live
// exactly as long as the display: Close severs them all.
type WeatherDisplay struct {
	ant.AutoDisconnect
	name        string
	temperature float64
	humidity    float64
	pressure    float64
}

func NewWeatherDisplay(name string, station *WeatherStation) *WeatherDisplay {
	d := &WeatherDisplay{name: name}
	d.AddConnection(
		station.TemperatureChanged.Connect(func(temp float64) {
			d.temperature = temp
			log.Printf("[%s] Temperature updated to %.1f°C", d.name, temp)
		}),
		station.HumidityChanged.Connect(func(humidity float64) {
			d.humidity = humidity
			log.Printf("[%s] Humidity updated to %.1f%%", d.name, humidity)
		}),
		station.PressureChanged.Connect(func(pressure float64) {
			d.pressure = pressure
			log.Printf("[%s] Pressure updated to %.2f hPa", d.name, pressure)
		}),
		station.WeatherAlert.Connect(func(alert string) {
			log.Printf("[%s] ALERT: %s", d.name, alert)
		}),
	)
	return d
}

// WeatherStatistics accumulates every reading it sees.
type WeatherStatistics struct {
	ant.AutoDisconnect
	temperatures []float64
	humidities   []float64
	pressures    []float64
	alerts       int
}

func NewWeatherStatistics(station *WeatherStation) *WeatherStatistics {
	s := &WeatherStatistics{}
	s.AddConnection(
		station.TemperatureChanged.Connect(func(v float64) {
			s.temperatures = append(s.temperatures, v)
		}),
		station.HumidityChanged.Connect(func(v float64) {
			s.humidities = append(s.humidities, v)
		}),
		station.PressureChanged.Connect(func(v float64) {
			s.pressures = append(s.pressures, v)
		}),
		station.WeatherAlert.Connect(func(string) {
			s.alerts++
		}),
	)
	return s
}

func (s *WeatherStatistics) render() {
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"metric", "samples", "min", "max", "avg"})
	for _, row := range []struct {
		name    string
		samples []float64
	}{
		{"temperature °C", s.temperatures},
		{"humidity %", s.humidities},
		{"pressure hPa", s.pressures},
	} {
		min, max, avg := summarize(row.samples)
		tbl.Append([]string{
			row.name,
			fmt.Sprint(len(row.samples)),
			fmt.Sprintf("%.2f", min),
			fmt.Sprintf("%.2f", max),
			fmt.Sprintf("%.2f", avg),
		})
	}
	tbl.Append([]string{"alerts", fmt.Sprint(s.alerts), "", "", ""})
	tbl.Render()
}

func summarize(samples []float64) (min, max, avg float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	min, max = samples[0], samples[0]
	sum := 0.0
	for _, v := range samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(samples))
}

func main() {
	station := NewWeatherStation()

	indoor := NewWeatherDisplay("indoor", station)
	outdoor := NewWeatherDisplay("outdoor", station)
	stats := NewWeatherStatistics(station)

	log.Printf("two displays and a statistics tracker subscribed")
	station.SetTemperature(22.5)
	station.SetHumidity(55.0)
	station.SetPressure(1015.3)

	station.SetTemperature(36.2) // triggers the high temperature alert
	station.SetHumidity(85.0)    // triggers the high humidity alert
	station.SetPressure(998.7)   // triggers the low pressure alert

	log.Printf("closing the outdoor display")
	outdoor.Close()

	station.SetTemperature(28.0)
	station.SetPressure(1005.0)

	indoor.Close()
	stats.render()
	stats.Close()
}
