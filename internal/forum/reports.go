package forum

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type ReportInput struct {
	TargetType   TargetType
	TargetNumber int64
	Reason       string
	Content      string
}

type ReportService struct {
	reports  ReportRepo
	posts    PostRepo
	comments CommentRepo
	logger   *zap.SugaredLogger
}

func NewReportService(reports ReportRepo, posts PostRepo, comments CommentRepo, logger *zap.SugaredLogger) *ReportService {
	return &ReportService{reports: reports, posts: posts, comments: comments, logger: logger}
}

// File records a report against a post or comment. The reason must come
// from the reason catalogue; self-reports are rejected; an identical
// (complainant, target, reason, content) tuple is acknowledged with
// ErrAlreadyReported instead of a second row. No counter on the target is
// touched and no penalty is issued here; both are admin actions.
func (s *ReportService) File(ctx context.Context, complainantID int64, in ReportInput) error {
	if in.Content == "" {
		return invalidf(`data should have "content" field`)
	}
	if in.Reason == "" {
		return invalidf(`data should have "reason" field`)
	}

	reason, err := s.reports.ReasonByText(ctx, in.Reason)
	if err != nil {
		if err != ErrNotFound {
			return fmt.Errorf("resolve reason: %w", err)
		}
		reasons, listErr := s.reports.Reasons(ctx)
		if listErr != nil {
			return fmt.Errorf("list reasons: %w", listErr)
		}
		quoted := make([]string, len(reasons))
		for i, r := range reasons {
			quoted[i] = fmt.Sprintf("'%s'", r.Reason)
		}
		return invalidf("reason is available only %s", strings.Join(quoted, ", "))
	}

	var defendantID int64
	switch in.TargetType {
	case TargetPost:
		post, err := s.posts.GetMeta(ctx, in.TargetNumber)
		if err != nil {
			if err == ErrNotFound {
				return invalidf("no such post %d", in.TargetNumber)
			}
			return fmt.Errorf("resolve post: %w", err)
		}
		defendantID = post.UserID
	case TargetComment:
		comment, err := s.comments.GetMeta(ctx, in.TargetNumber)
		if err != nil {
			if err == ErrNotFound {
				return invalidf("no such comment %d", in.TargetNumber)
			}
			return fmt.Errorf("resolve comment: %w", err)
		}
		defendantID = comment.UserID
	default:
		return invalidf("target type must be 'post' or 'comment'")
	}

	if defendantID == complainantID {
		return ErrSelfReport
	}

	created, err := s.reports.Create(ctx, &Report{
		ComplainantID: complainantID,
		DefendantID:   defendantID,
		ReasonID:      reason.ID,
		Status:        ReportApplied,
		TargetType:    in.TargetType,
		TargetNumber:  in.TargetNumber,
		Content:       in.Content,
	})
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if !created {
		return ErrAlreadyReported
	}
	s.logger.Infow("Report filed",
		"target_type", in.TargetType,
		"target_number", in.TargetNumber,
		"reason", reason.Reason,
	)
	return nil
}
