package integration_test

import "time"

const (
	dbName      = "movie_theatre"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"

	moviesFile = "../catalog/testdata/movies.txt"

	TestMovieTitle    = "Test Movie"
	TestMovieYear     = 1962
	TestMovieCountry  = "France"
	TestMovieDuration = 110
	TestMovieDirector = "Jane Doe"
	TestMovieRating   = "7.5"
)

var (
	TestMovieReleaseAt = time.Date(1962, time.September, 1, 0, 0, 0, 0, time.UTC)
	TestMovieGenres    = []string{"Drama", "Mystery"}
	TestMovieActors    = []string{"John Doe", "Mary Roe"}

	// 10:00 falls into the default morning period.
	testNow = time.Date(2024, time.May, 10, 10, 0, 0, 0, time.UTC)
)
