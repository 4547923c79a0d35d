package store

import (
	"sync"
	"time"

	"github.com/ducksouplab/ridgeplot/env"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	figureIndexSingleton *figureIndex
)

// Figure is a rendered plot kept in memory until evicted
type Figure struct {
	Id          string    `json:"id"`
	Kind        string    `json:"kind"`
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
	Data        []byte    `json:"-"`
}

type figureIndex struct {
	sync.Mutex
	capacity int
	index    map[string]*Figure
	// insertion order, oldest first
	ids []string
}

func init() {
	figureIndexSingleton = newFigureIndex(env.StoreSize)
}

func newFigureIndex(capacity int) *figureIndex {
	return &figureIndex{sync.Mutex{}, capacity, make(map[string]*Figure), nil}
}

func (fi *figureIndex) add(kind, contentType string, data []byte) *Figure {
	fi.Lock()
	defer fi.Unlock()

	figure := &Figure{
		Id:          uuid.New().String(),
		Kind:        kind,
		ContentType: contentType,
		CreatedAt:   time.Now(),
		Data:        data,
	}
	fi.index[figure.Id] = figure
	fi.ids = append(fi.ids, figure.Id)

	for len(fi.ids) > fi.capacity {
		oldest := fi.ids[0]
		fi.ids = fi.ids[1:]
		delete(fi.index, oldest)
		log.Debug().Str("context", "store").Str("figure", oldest).Msg("figure_evicted")
	}
	return figure
}

func (fi *figureIndex) get(id string) (*Figure, bool) {
	fi.Lock()
	defer fi.Unlock()

	figure, ok := fi.index[id]
	return figure, ok
}

func (fi *figureIndex) remove(id string) {
	fi.Lock()
	defer fi.Unlock()

	if _, ok := fi.index[id]; !ok {
		return
	}
	delete(fi.index, id)
	for i, other := range fi.ids {
		if other == id {
			fi.ids = append(fi.ids[:i], fi.ids[i+1:]...)
			break
		}
	}
}

func (fi *figureIndex) len() int {
	fi.Lock()
	defer fi.Unlock()

	return len(fi.index)
}

// API

func AddFigure(kind, contentType string, data []byte) *Figure {
	figure := figureIndexSingleton.add(kind, contentType, data)
	log.Info().Str("context", "store").Str("figure", figure.Id).Str("kind", kind).Int("size", len(data)).Msg("figure_stored")
	return figure
}

func GetFigure(id string) (*Figure, bool) {
	return figureIndexSingleton.get(id)
}

func RemoveFigure(id string) {
	figureIndexSingleton.remove(id)
}

func FigureCount() int {
	return figureIndexSingleton.len()
}
