package main

// @title Weather Insight API
// @version 1.0
// @description Google Calendar, OpenWeather and generative insight backend.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
// @schemes http
import (
	_ "weather-insight/docs"
	protocol "weather-insight/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
