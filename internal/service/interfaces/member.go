package interfaces

import (
	"context"
	"github.com/bugielektrik/sqlrepo/internal/domain/book"
	"github.com/bugielektrik/sqlrepo/internal/domain/member"
)

type MemberService interface {
	ListMembers(ctx context.Context) ([]member.Response, error)
	CreateMember(ctx context.Context, req member.Request) (member.Response, error)
	GetMember(ctx context.Context, id string) (member.Response, error)
	UpdateMember(ctx context.Context, id string, req member.Request) error
	DeleteMember(ctx context.Context, id string) error
	ListMemberBooks(ctx context.Context, memberID string) ([]book.Response, error)
}
