// file: internals/features/school/assignments/service/bulk_assign_service.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "educentr_backend/internals/features/school/assignments/model"
	curriculumModel "educentr_backend/internals/features/school/curriculum/model"
)

/* =======================================================
   Bulk assignment

   Assigns method packages startNumber..12 of one subject to
   a teacher, skipping pairs that already exist and creating
   placeholder packages ("Урок N") for missing numbers. New
   assignments start locked; the unlock rescan at the end
   opens exactly one.
   ======================================================= */

type BulkAssignInput struct {
	TeacherID   uuid.UUID
	SubjectID   uuid.UUID
	StartNumber int
	Status      m.AssignmentStatus
	Deadline    *time.Time
	Notes       string
	GrantedBy   uuid.UUID
	ActorRole   string
	ActorName   string
}

type BulkAssignResult struct {
	Created                   []m.MethodAssignmentModel
	SkippedExisting           []int
	MissingMethodNumbers      []int
	PlaceholderMethodsCreated []int
}

// PlanBulkNumbers splits startNumber..12 into numbers to create and numbers
// to skip because the teacher already holds them.
func PlanBulkNumbers(startNumber int, alreadyAssigned map[int]bool) (toCreate, skipped []int) {
	for n := startNumber; n <= curriculumModel.MaxMethodNumber; n++ {
		if alreadyAssigned[n] {
			skipped = append(skipped, n)
			continue
		}
		toCreate = append(toCreate, n)
	}
	return toCreate, skipped
}

// BulkAssign runs the whole bulk creation in one transaction.
func (s *Service) BulkAssign(in BulkAssignInput) (*BulkAssignResult, error) {
	res := &BulkAssignResult{
		SkippedExisting:           []int{},
		MissingMethodNumbers:      []int{},
		PlaceholderMethodsCreated: []int{},
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var pkgs []curriculumModel.MethodPackageModel
		if err := tx.
			Where("method_package_subject_id = ?", in.SubjectID).
			Order("method_package_number ASC, method_package_created_at ASC").
			Find(&pkgs).Error; err != nil {
			return err
		}

		byNumber := make(map[int]curriculumModel.MethodPackageModel, len(pkgs))
		for _, p := range pkgs {
			if _, seen := byNumber[p.MethodPackageNumber]; !seen {
				byNumber[p.MethodPackageNumber] = p
			}
		}

		// Auto-create placeholders so the full 1..12 ladder exists.
		subjectID := in.SubjectID
		for n := curriculumModel.MinMethodNumber; n <= curriculumModel.MaxMethodNumber; n++ {
			if _, ok := byNumber[n]; ok {
				continue
			}
			placeholder := curriculumModel.MethodPackageModel{
				MethodPackageSubjectID: &subjectID,
				MethodPackageNumber:    n,
				MethodPackageTitle:     fmt.Sprintf("Урок %d", n),
			}
			if err := tx.Create(&placeholder).Error; err != nil {
				return err
			}
			byNumber[n] = placeholder
			res.PlaceholderMethodsCreated = append(res.PlaceholderMethodsCreated, n)
		}
		for n := curriculumModel.MinMethodNumber; n <= curriculumModel.MaxMethodNumber; n++ {
			if _, ok := byNumber[n]; !ok {
				res.MissingMethodNumbers = append(res.MissingMethodNumbers, n)
			}
		}

		packageIDs := make([]uuid.UUID, 0, len(byNumber))
		for _, p := range byNumber {
			packageIDs = append(packageIDs, p.MethodPackageID)
		}
		var existing []m.MethodAssignmentModel
		if err := tx.
			Where("method_assignment_teacher_id = ?", in.TeacherID).
			Where("method_assignment_package_id IN ?", packageIDs).
			Find(&existing).Error; err != nil {
			return err
		}
		existingByPackage := make(map[uuid.UUID]bool, len(existing))
		for _, a := range existing {
			existingByPackage[a.MethodAssignmentPackageID] = true
		}
		alreadyAssigned := make(map[int]bool)
		for n, p := range byNumber {
			if existingByPackage[p.MethodPackageID] {
				alreadyAssigned[n] = true
			}
		}

		toCreate, skipped := PlanBulkNumbers(in.StartNumber, alreadyAssigned)
		res.SkippedExisting = append(res.SkippedExisting, skipped...)

		grantedBy := in.GrantedBy
		for _, n := range toCreate {
			pkg, ok := byNumber[n]
			if !ok {
				continue
			}
			assignment := m.MethodAssignmentModel{
				MethodAssignmentPackageID: pkg.MethodPackageID,
				MethodAssignmentTeacherID: in.TeacherID,
				MethodAssignmentGrantedBy: &grantedBy,
				MethodAssignmentDeadline:  in.Deadline,
				MethodAssignmentCanEdit:   false,
				MethodAssignmentStatus:    in.Status,
				MethodAssignmentNotes:     in.Notes,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
			res.Created = append(res.Created, assignment)

			if in.Notes != "" {
				actor := Actor{UserID: in.GrantedBy, Role: in.ActorRole, Name: in.ActorName}
				if err := s.AddComment(tx, assignment.MethodAssignmentID, actor, in.Notes); err != nil {
					return err
				}
			}
		}

		return s.RecomputeUnlock(tx, in.TeacherID, in.SubjectID)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
