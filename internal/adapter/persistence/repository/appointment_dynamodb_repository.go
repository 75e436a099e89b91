package repository

import (
	"client_portal/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppointmentsTableName = "appointments"

// The appointment status attribute is historically named "outcome"; the
// list filter has to match on that name.
type appointmentItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"clientId"`
	LeadID    string `dynamodbav:"leadId"`
	Date      string `dynamodbav:"date"`
	Time      string `dynamodbav:"time"`
	Outcome   string `dynamodbav:"outcome"`
	Notes     string `dynamodbav:"notes"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[*entities.Appointment] {
	return &ResourceDynamoRepository[*entities.Appointment]{
		ddb:        ddb,
		tableName:  getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
		statusAttr: "outcome",
		marshal: func(a *entities.Appointment) (map[string]types.AttributeValue, error) {
			return attributevalue.MarshalMap(toAppointmentItem(a))
		},
		unmarshal: func(av map[string]types.AttributeValue) (*entities.Appointment, error) {
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			return fromAppointmentItem(it), nil
		},
	}
}

func toAppointmentItem(a *entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:        a.ID,
		ClientID:  a.ClientID,
		LeadID:    a.LeadID,
		Date:      a.Date,
		Time:      a.Time,
		Outcome:   string(a.Outcome),
		Notes:     a.Notes,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) *entities.Appointment {
	return &entities.Appointment{
		ID:        it.ID,
		ClientID:  it.ClientID,
		LeadID:    it.LeadID,
		Date:      it.Date,
		Time:      it.Time,
		Outcome:   entities.AppointmentOutcome(it.Outcome),
		Notes:     it.Notes,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
