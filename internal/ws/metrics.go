package ws

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	snakeStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snake_sessions_started_total",
		Help: "Snake games started over the websocket endpoint",
	})
	snakeFinished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snake_sessions_finished_total",
		Help: "Snake games that ended in a collision",
	})
)

func init() {
	prometheus.MustRegister(snakeStarted)
	prometheus.MustRegister(snakeFinished)
}
