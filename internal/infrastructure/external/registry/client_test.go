package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentsPayload = `[
	{"firstName":"Ana","lastName":"X","age":20,"gender":"Female","city":"Skopje","averageGrade":5},
	{"firstName":"Bob","lastName":"Y","age":19,"gender":"Male","city":"Skopje","averageGrade":3}
]`

func TestFetchStudents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(studentsPayload))
	}))
	defer server.Close()

	client := NewClient(DefaultClientConfig(server.URL))

	students, err := client.FetchStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)

	assert.Equal(t, "Ana", students[0].FirstName)
	assert.Equal(t, "X", students[0].LastName)
	assert.Equal(t, 20, students[0].Age)
	assert.Equal(t, "Female", students[0].Gender)
	assert.Equal(t, "Skopje", students[0].City)
	assert.Equal(t, 5.0, students[0].AverageGrade)

	assert.Equal(t, "Bob", students[1].FirstName)
	assert.Equal(t, 3.0, students[1].AverageGrade)
}

func TestFetchStudentsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(DefaultClientConfig(server.URL))

	students, err := client.FetchStudents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestFetchStudentsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(DefaultClientConfig(server.URL))

	students, err := client.FetchStudents(context.Background())
	assert.Nil(t, students)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestFetchStudentsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(DefaultClientConfig(server.URL))

	_, err := client.FetchStudents(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestFetchStudentsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := NewClient(DefaultClientConfig(server.URL))

	_, err := client.FetchStudents(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Error(t, errors.Unwrap(fetchErr))
}

func TestFetchStudentsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client := NewClient(DefaultClientConfig(server.URL))

	_, err := client.FetchStudents(context.Background())

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Error(t, errors.Unwrap(parseErr))
}

func TestFetchStudentsContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(studentsPayload))
	}))
	defer server.Close()

	client := NewClient(DefaultClientConfig(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchStudents(ctx)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
