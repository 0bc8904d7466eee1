package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guitarworld/guitar-store/internal/core/domain"
)

const guitarsCollection = "guitars"

// GuitarRepository implements ports.Repository[domain.Guitar] on MongoDB.
type GuitarRepository struct {
	coll *mongo.Collection
}

func NewGuitarRepository(db *mongo.Database) *GuitarRepository {
	return &GuitarRepository{coll: db.Collection(guitarsCollection)}
}

type guitarDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Brand       string             `bson:"brand"`
	Model       string             `bson:"model"`
	Picture     string             `bson:"picture"`
	Style       string             `bson:"style"`
	Material    string             `bson:"material"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
}

func (d guitarDoc) toDomain() domain.Guitar {
	return domain.Guitar{
		ID:          d.ID.Hex(),
		Brand:       d.Brand,
		Model:       d.Model,
		Picture:     d.Picture,
		Style:       domain.GuitarStyle(d.Style),
		Material:    d.Material,
		Price:       d.Price,
		Description: d.Description,
	}
}

func guitarToDoc(g *domain.Guitar) guitarDoc {
	return guitarDoc{
		Brand:       g.Brand,
		Model:       g.Model,
		Picture:     g.Picture,
		Style:       string(g.Style),
		Material:    g.Material,
		Price:       g.Price,
		Description: g.Description,
	}
}

func (r *GuitarRepository) List(ctx context.Context) ([]domain.Guitar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list guitars: %w", err)
	}
	return decodeGuitars(ctx, cur)
}

func (r *GuitarRepository) GetByID(ctx context.Context, id string) (*domain.Guitar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGuitarNotFound
	}

	var doc guitarDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGuitarNotFound
		}
		return nil, fmt.Errorf("find guitar: %w", err)
	}

	guitar := doc.toDomain()
	return &guitar, nil
}

func (r *GuitarRepository) Create(ctx context.Context, guitar *domain.Guitar) (*domain.Guitar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, guitarToDoc(guitar))
	if err != nil {
		return nil, fmt.Errorf("insert guitar: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *guitar
	created.ID = oid.Hex()
	return &created, nil
}

// Update is a full replace-by-id; the whole document swaps atomically.
func (r *GuitarRepository) Update(ctx context.Context, guitar *domain.Guitar) (*domain.Guitar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(guitar.ID)
	if err != nil {
		return nil, domain.ErrGuitarNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, guitarToDoc(guitar))
	if err != nil {
		return nil, fmt.Errorf("update guitar: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGuitarNotFound
	}

	updated := *guitar
	return &updated, nil
}

func (r *GuitarRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGuitarNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete guitar: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGuitarNotFound
	}
	return nil
}

func (r *GuitarRepository) Search(ctx context.Context, key string, value any) ([]domain.Guitar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{key: value})
	if err != nil {
		return nil, fmt.Errorf("search guitars: %w", err)
	}
	return decodeGuitars(ctx, cur)
}

func decodeGuitars(ctx context.Context, cur *mongo.Cursor) ([]domain.Guitar, error) {
	defer cur.Close(ctx)

	guitars := []domain.Guitar{}
	for cur.Next(ctx) {
		var doc guitarDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode guitar: %w", err)
		}
		guitars = append(guitars, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate guitars: %w", err)
	}
	return guitars, nil
}
