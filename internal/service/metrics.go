package service

import "github.com/prometheus/client_golang/prometheus"

var (
	sessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_sessions_started_total",
			Help: "Game sessions started, by game type",
		},
		[]string{"game"},
	)
	sessionsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_sessions_finished_total",
			Help: "Game sessions reaching a terminal state, by game type and outcome",
		},
		[]string{"game", "outcome"},
	)
	scoresSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_scores_saved_total",
			Help: "Score entries written to the store, by game type",
		},
		[]string{"game"},
	)
)

func init() {
	prometheus.MustRegister(sessionsStarted)
	prometheus.MustRegister(sessionsFinished)
	prometheus.MustRegister(scoresSaved)
}
